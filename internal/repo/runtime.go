// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/conversation"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/message"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/moodentry"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/notification"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/patient"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/screeningalert"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/screeningresult"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/selfcareexercise"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/teleconsultreferral"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/user"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/usersession"
	"github.com/iwantdrugsxd/mind-ease/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	conversationMixin := schema.Conversation{}.Mixin()
	conversationMixinFields0 := conversationMixin[0].Fields()
	_ = conversationMixinFields0
	conversationMixinFields1 := conversationMixin[1].Fields()
	_ = conversationMixinFields1
	conversationFields := schema.Conversation{}.Fields()
	_ = conversationFields
	// conversationDescCreatedAt is the schema descriptor for created_at field.
	conversationDescCreatedAt := conversationMixinFields1[0].Descriptor()
	// conversation.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversation.DefaultCreatedAt = conversationDescCreatedAt.Default.(func() time.Time)
	// conversationDescUpdatedAt is the schema descriptor for updated_at field.
	conversationDescUpdatedAt := conversationMixinFields1[1].Descriptor()
	// conversation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	conversation.DefaultUpdatedAt = conversationDescUpdatedAt.Default.(func() time.Time)
	// conversation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	conversation.UpdateDefaultUpdatedAt = conversationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// conversationDescSessionID is the schema descriptor for session_id field.
	conversationDescSessionID := conversationFields[1].Descriptor()
	// conversation.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	conversation.SessionIDValidator = func() func(string) error {
		validators := conversationDescSessionID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(session_id string) error {
			for _, fn := range fns {
				if err := fn(session_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// conversationDescIsActive is the schema descriptor for is_active field.
	conversationDescIsActive := conversationFields[3].Descriptor()
	// conversation.DefaultIsActive holds the default value on creation for the is_active field.
	conversation.DefaultIsActive = conversationDescIsActive.Default.(bool)
	// conversationDescID is the schema descriptor for id field.
	conversationDescID := conversationMixinFields0[0].Descriptor()
	// conversation.DefaultID holds the default value on creation for the id field.
	conversation.DefaultID = conversationDescID.Default.(func() uuid.UUID)
	messageMixin := schema.Message{}.Mixin()
	messageMixinFields0 := messageMixin[0].Fields()
	_ = messageMixinFields0
	messageMixinFields1 := messageMixin[1].Fields()
	_ = messageMixinFields1
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageMixinFields1[0].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	// messageDescDetectedEmotion is the schema descriptor for detected_emotion field.
	messageDescDetectedEmotion := messageFields[3].Descriptor()
	// message.DetectedEmotionValidator is a validator for the "detected_emotion" field. It is called by the builders before save.
	message.DetectedEmotionValidator = messageDescDetectedEmotion.Validators[0].(func(string) error)
	// messageDescIntent is the schema descriptor for intent field.
	messageDescIntent := messageFields[7].Descriptor()
	// message.IntentValidator is a validator for the "intent" field. It is called by the builders before save.
	message.IntentValidator = messageDescIntent.Validators[0].(func(string) error)
	// messageDescID is the schema descriptor for id field.
	messageDescID := messageMixinFields0[0].Descriptor()
	// message.DefaultID holds the default value on creation for the id field.
	message.DefaultID = messageDescID.Default.(func() uuid.UUID)
	moodentryMixin := schema.MoodEntry{}.Mixin()
	moodentryMixinFields0 := moodentryMixin[0].Fields()
	_ = moodentryMixinFields0
	moodentryMixinFields1 := moodentryMixin[1].Fields()
	_ = moodentryMixinFields1
	moodentryFields := schema.MoodEntry{}.Fields()
	_ = moodentryFields
	// moodentryDescCreatedAt is the schema descriptor for created_at field.
	moodentryDescCreatedAt := moodentryMixinFields1[0].Descriptor()
	// moodentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	moodentry.DefaultCreatedAt = moodentryDescCreatedAt.Default.(func() time.Time)
	// moodentryDescMood is the schema descriptor for mood field.
	moodentryDescMood := moodentryFields[1].Descriptor()
	// moodentry.MoodValidator is a validator for the "mood" field. It is called by the builders before save.
	moodentry.MoodValidator = moodentryDescMood.Validators[0].(func(int) error)
	// moodentryDescEnergy is the schema descriptor for energy field.
	moodentryDescEnergy := moodentryFields[2].Descriptor()
	// moodentry.EnergyValidator is a validator for the "energy" field. It is called by the builders before save.
	moodentry.EnergyValidator = moodentryDescEnergy.Validators[0].(func(int) error)
	// moodentryDescSleepQuality is the schema descriptor for sleep_quality field.
	moodentryDescSleepQuality := moodentryFields[3].Descriptor()
	// moodentry.SleepQualityValidator is a validator for the "sleep_quality" field. It is called by the builders before save.
	moodentry.SleepQualityValidator = moodentryDescSleepQuality.Validators[0].(func(int) error)
	// moodentryDescStress is the schema descriptor for stress field.
	moodentryDescStress := moodentryFields[4].Descriptor()
	// moodentry.StressValidator is a validator for the "stress" field. It is called by the builders before save.
	moodentry.StressValidator = moodentryDescStress.Validators[0].(func(int) error)
	// moodentryDescID is the schema descriptor for id field.
	moodentryDescID := moodentryMixinFields0[0].Descriptor()
	// moodentry.DefaultID holds the default value on creation for the id field.
	moodentry.DefaultID = moodentryDescID.Default.(func() uuid.UUID)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationMixinFields1 := notificationMixin[1].Fields()
	_ = notificationMixinFields1
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields1[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescType is the schema descriptor for type field.
	notificationDescType := notificationFields[1].Descriptor()
	// notification.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	notification.TypeValidator = notificationDescType.Validators[0].(func(string) error)
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[2].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = notificationDescTitle.Validators[0].(func(string) error)
	// notificationDescIsRead is the schema descriptor for is_read field.
	notificationDescIsRead := notificationFields[5].Descriptor()
	// notification.DefaultIsRead holds the default value on creation for the is_read field.
	notification.DefaultIsRead = notificationDescIsRead.Default.(bool)
	// notificationDescID is the schema descriptor for id field.
	notificationDescID := notificationMixinFields0[0].Descriptor()
	// notification.DefaultID holds the default value on creation for the id field.
	notification.DefaultID = notificationDescID.Default.(func() uuid.UUID)
	patientMixin := schema.Patient{}.Mixin()
	patientMixinFields0 := patientMixin[0].Fields()
	_ = patientMixinFields0
	patientMixinFields1 := patientMixin[1].Fields()
	_ = patientMixinFields1
	patientFields := schema.Patient{}.Fields()
	_ = patientFields
	// patientDescCreatedAt is the schema descriptor for created_at field.
	patientDescCreatedAt := patientMixinFields1[0].Descriptor()
	// patient.DefaultCreatedAt holds the default value on creation for the created_at field.
	patient.DefaultCreatedAt = patientDescCreatedAt.Default.(func() time.Time)
	// patientDescUpdatedAt is the schema descriptor for updated_at field.
	patientDescUpdatedAt := patientMixinFields1[1].Descriptor()
	// patient.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patient.DefaultUpdatedAt = patientDescUpdatedAt.Default.(func() time.Time)
	// patient.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patient.UpdateDefaultUpdatedAt = patientDescUpdatedAt.UpdateDefault.(func() time.Time)
	// patientDescPhoneNumber is the schema descriptor for phone_number field.
	patientDescPhoneNumber := patientFields[2].Descriptor()
	// patient.PhoneNumberValidator is a validator for the "phone_number" field. It is called by the builders before save.
	patient.PhoneNumberValidator = patientDescPhoneNumber.Validators[0].(func(string) error)
	// patientDescEmergencyContact is the schema descriptor for emergency_contact field.
	patientDescEmergencyContact := patientFields[3].Descriptor()
	// patient.EmergencyContactValidator is a validator for the "emergency_contact" field. It is called by the builders before save.
	patient.EmergencyContactValidator = patientDescEmergencyContact.Validators[0].(func(string) error)
	// patientDescEmergencyPhone is the schema descriptor for emergency_phone field.
	patientDescEmergencyPhone := patientFields[4].Descriptor()
	// patient.EmergencyPhoneValidator is a validator for the "emergency_phone" field. It is called by the builders before save.
	patient.EmergencyPhoneValidator = patientDescEmergencyPhone.Validators[0].(func(string) error)
	// patientDescID is the schema descriptor for id field.
	patientDescID := patientMixinFields0[0].Descriptor()
	// patient.DefaultID holds the default value on creation for the id field.
	patient.DefaultID = patientDescID.Default.(func() uuid.UUID)
	screeningalertMixin := schema.ScreeningAlert{}.Mixin()
	screeningalertMixinFields0 := screeningalertMixin[0].Fields()
	_ = screeningalertMixinFields0
	screeningalertMixinFields1 := screeningalertMixin[1].Fields()
	_ = screeningalertMixinFields1
	screeningalertFields := schema.ScreeningAlert{}.Fields()
	_ = screeningalertFields
	// screeningalertDescCreatedAt is the schema descriptor for created_at field.
	screeningalertDescCreatedAt := screeningalertMixinFields1[0].Descriptor()
	// screeningalert.DefaultCreatedAt holds the default value on creation for the created_at field.
	screeningalert.DefaultCreatedAt = screeningalertDescCreatedAt.Default.(func() time.Time)
	// screeningalertDescIsResolved is the schema descriptor for is_resolved field.
	screeningalertDescIsResolved := screeningalertFields[6].Descriptor()
	// screeningalert.DefaultIsResolved holds the default value on creation for the is_resolved field.
	screeningalert.DefaultIsResolved = screeningalertDescIsResolved.Default.(bool)
	// screeningalertDescID is the schema descriptor for id field.
	screeningalertDescID := screeningalertMixinFields0[0].Descriptor()
	// screeningalert.DefaultID holds the default value on creation for the id field.
	screeningalert.DefaultID = screeningalertDescID.Default.(func() uuid.UUID)
	screeningresultMixin := schema.ScreeningResult{}.Mixin()
	screeningresultMixinFields0 := screeningresultMixin[0].Fields()
	_ = screeningresultMixinFields0
	screeningresultMixinFields1 := screeningresultMixin[1].Fields()
	_ = screeningresultMixinFields1
	screeningresultFields := schema.ScreeningResult{}.Fields()
	_ = screeningresultFields
	// screeningresultDescCreatedAt is the schema descriptor for created_at field.
	screeningresultDescCreatedAt := screeningresultMixinFields1[0].Descriptor()
	// screeningresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	screeningresult.DefaultCreatedAt = screeningresultDescCreatedAt.Default.(func() time.Time)
	// screeningresultDescTotalScore is the schema descriptor for total_score field.
	screeningresultDescTotalScore := screeningresultFields[3].Descriptor()
	// screeningresult.TotalScoreValidator is a validator for the "total_score" field. It is called by the builders before save.
	screeningresult.TotalScoreValidator = screeningresultDescTotalScore.Validators[0].(func(int) error)
	// screeningresultDescRecommendedModule is the schema descriptor for recommended_module field.
	screeningresultDescRecommendedModule := screeningresultFields[7].Descriptor()
	// screeningresult.RecommendedModuleValidator is a validator for the "recommended_module" field. It is called by the builders before save.
	screeningresult.RecommendedModuleValidator = screeningresultDescRecommendedModule.Validators[0].(func(string) error)
	// screeningresultDescID is the schema descriptor for id field.
	screeningresultDescID := screeningresultMixinFields0[0].Descriptor()
	// screeningresult.DefaultID holds the default value on creation for the id field.
	screeningresult.DefaultID = screeningresultDescID.Default.(func() uuid.UUID)
	selfcareexerciseMixin := schema.SelfCareExercise{}.Mixin()
	selfcareexerciseMixinFields0 := selfcareexerciseMixin[0].Fields()
	_ = selfcareexerciseMixinFields0
	selfcareexerciseMixinFields1 := selfcareexerciseMixin[1].Fields()
	_ = selfcareexerciseMixinFields1
	selfcareexerciseFields := schema.SelfCareExercise{}.Fields()
	_ = selfcareexerciseFields
	// selfcareexerciseDescCreatedAt is the schema descriptor for created_at field.
	selfcareexerciseDescCreatedAt := selfcareexerciseMixinFields1[0].Descriptor()
	// selfcareexercise.DefaultCreatedAt holds the default value on creation for the created_at field.
	selfcareexercise.DefaultCreatedAt = selfcareexerciseDescCreatedAt.Default.(func() time.Time)
	// selfcareexerciseDescUpdatedAt is the schema descriptor for updated_at field.
	selfcareexerciseDescUpdatedAt := selfcareexerciseMixinFields1[1].Descriptor()
	// selfcareexercise.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	selfcareexercise.DefaultUpdatedAt = selfcareexerciseDescUpdatedAt.Default.(func() time.Time)
	// selfcareexercise.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	selfcareexercise.UpdateDefaultUpdatedAt = selfcareexerciseDescUpdatedAt.UpdateDefault.(func() time.Time)
	// selfcareexerciseDescSlug is the schema descriptor for slug field.
	selfcareexerciseDescSlug := selfcareexerciseFields[0].Descriptor()
	// selfcareexercise.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	selfcareexercise.SlugValidator = func() func(string) error {
		validators := selfcareexerciseDescSlug.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(slug string) error {
			for _, fn := range fns {
				if err := fn(slug); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// selfcareexerciseDescName is the schema descriptor for name field.
	selfcareexerciseDescName := selfcareexerciseFields[1].Descriptor()
	// selfcareexercise.NameValidator is a validator for the "name" field. It is called by the builders before save.
	selfcareexercise.NameValidator = func() func(string) error {
		validators := selfcareexerciseDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// selfcareexerciseDescDurationMinutes is the schema descriptor for duration_minutes field.
	selfcareexerciseDescDurationMinutes := selfcareexerciseFields[4].Descriptor()
	// selfcareexercise.DurationMinutesValidator is a validator for the "duration_minutes" field. It is called by the builders before save.
	selfcareexercise.DurationMinutesValidator = selfcareexerciseDescDurationMinutes.Validators[0].(func(int) error)
	// selfcareexerciseDescIsActive is the schema descriptor for is_active field.
	selfcareexerciseDescIsActive := selfcareexerciseFields[8].Descriptor()
	// selfcareexercise.DefaultIsActive holds the default value on creation for the is_active field.
	selfcareexercise.DefaultIsActive = selfcareexerciseDescIsActive.Default.(bool)
	// selfcareexerciseDescID is the schema descriptor for id field.
	selfcareexerciseDescID := selfcareexerciseMixinFields0[0].Descriptor()
	// selfcareexercise.DefaultID holds the default value on creation for the id field.
	selfcareexercise.DefaultID = selfcareexerciseDescID.Default.(func() uuid.UUID)
	teleconsultreferralMixin := schema.TeleconsultReferral{}.Mixin()
	teleconsultreferralMixinFields0 := teleconsultreferralMixin[0].Fields()
	_ = teleconsultreferralMixinFields0
	teleconsultreferralMixinFields1 := teleconsultreferralMixin[1].Fields()
	_ = teleconsultreferralMixinFields1
	teleconsultreferralFields := schema.TeleconsultReferral{}.Fields()
	_ = teleconsultreferralFields
	// teleconsultreferralDescCreatedAt is the schema descriptor for created_at field.
	teleconsultreferralDescCreatedAt := teleconsultreferralMixinFields1[0].Descriptor()
	// teleconsultreferral.DefaultCreatedAt holds the default value on creation for the created_at field.
	teleconsultreferral.DefaultCreatedAt = teleconsultreferralDescCreatedAt.Default.(func() time.Time)
	// teleconsultreferralDescUpdatedAt is the schema descriptor for updated_at field.
	teleconsultreferralDescUpdatedAt := teleconsultreferralMixinFields1[1].Descriptor()
	// teleconsultreferral.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	teleconsultreferral.DefaultUpdatedAt = teleconsultreferralDescUpdatedAt.Default.(func() time.Time)
	// teleconsultreferral.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	teleconsultreferral.UpdateDefaultUpdatedAt = teleconsultreferralDescUpdatedAt.UpdateDefault.(func() time.Time)
	// teleconsultreferralDescID is the schema descriptor for id field.
	teleconsultreferralDescID := teleconsultreferralMixinFields0[0].Descriptor()
	// teleconsultreferral.DefaultID holds the default value on creation for the id field.
	teleconsultreferral.DefaultID = teleconsultreferralDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescFullName is the schema descriptor for full_name field.
	userDescFullName := userFields[1].Descriptor()
	// user.FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	user.FullNameValidator = userDescFullName.Validators[0].(func(string) error)
	// userDescFailedLoginAttempts is the schema descriptor for failed_login_attempts field.
	userDescFailedLoginAttempts := userFields[6].Descriptor()
	// user.DefaultFailedLoginAttempts holds the default value on creation for the failed_login_attempts field.
	user.DefaultFailedLoginAttempts = userDescFailedLoginAttempts.Default.(int)
	// user.FailedLoginAttemptsValidator is a validator for the "failed_login_attempts" field. It is called by the builders before save.
	user.FailedLoginAttemptsValidator = userDescFailedLoginAttempts.Validators[0].(func(int) error)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
	usersessionMixin := schema.UserSession{}.Mixin()
	usersessionMixinFields0 := usersessionMixin[0].Fields()
	_ = usersessionMixinFields0
	usersessionMixinFields1 := usersessionMixin[1].Fields()
	_ = usersessionMixinFields1
	usersessionFields := schema.UserSession{}.Fields()
	_ = usersessionFields
	// usersessionDescCreatedAt is the schema descriptor for created_at field.
	usersessionDescCreatedAt := usersessionMixinFields1[0].Descriptor()
	// usersession.DefaultCreatedAt holds the default value on creation for the created_at field.
	usersession.DefaultCreatedAt = usersessionDescCreatedAt.Default.(func() time.Time)
	// usersessionDescUpdatedAt is the schema descriptor for updated_at field.
	usersessionDescUpdatedAt := usersessionMixinFields1[1].Descriptor()
	// usersession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	usersession.DefaultUpdatedAt = usersessionDescUpdatedAt.Default.(func() time.Time)
	// usersession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	usersession.UpdateDefaultUpdatedAt = usersessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// usersessionDescSessionID is the schema descriptor for session_id field.
	usersessionDescSessionID := usersessionFields[1].Descriptor()
	// usersession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	usersession.SessionIDValidator = func() func(string) error {
		validators := usersessionDescSessionID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(session_id string) error {
			for _, fn := range fns {
				if err := fn(session_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// usersessionDescRefreshTokenHash is the schema descriptor for refresh_token_hash field.
	usersessionDescRefreshTokenHash := usersessionFields[2].Descriptor()
	// usersession.RefreshTokenHashValidator is a validator for the "refresh_token_hash" field. It is called by the builders before save.
	usersession.RefreshTokenHashValidator = usersessionDescRefreshTokenHash.Validators[0].(func(string) error)
	// usersessionDescIPAddress is the schema descriptor for ip_address field.
	usersessionDescIPAddress := usersessionFields[4].Descriptor()
	// usersession.IPAddressValidator is a validator for the "ip_address" field. It is called by the builders before save.
	usersession.IPAddressValidator = usersessionDescIPAddress.Validators[0].(func(string) error)
	// usersessionDescID is the schema descriptor for id field.
	usersessionDescID := usersessionMixinFields0[0].Descriptor()
	// usersession.DefaultID holds the default value on creation for the id field.
	usersession.DefaultID = usersessionDescID.Default.(func() uuid.UUID)
}
