// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Conversation is the predicate function for conversation builders.
type Conversation func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// MoodEntry is the predicate function for moodentry builders.
type MoodEntry func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// Patient is the predicate function for patient builders.
type Patient func(*sql.Selector)

// ScreeningAlert is the predicate function for screeningalert builders.
type ScreeningAlert func(*sql.Selector)

// ScreeningResult is the predicate function for screeningresult builders.
type ScreeningResult func(*sql.Selector)

// SelfCareExercise is the predicate function for selfcareexercise builders.
type SelfCareExercise func(*sql.Selector)

// TeleconsultReferral is the predicate function for teleconsultreferral builders.
type TeleconsultReferral func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// UserSession is the predicate function for usersession builders.
type UserSession func(*sql.Selector)
