// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
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
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Conversation is the client for interacting with the Conversation builders.
	Conversation *ConversationClient
	// Message is the client for interacting with the Message builders.
	Message *MessageClient
	// MoodEntry is the client for interacting with the MoodEntry builders.
	MoodEntry *MoodEntryClient
	// Notification is the client for interacting with the Notification builders.
	Notification *NotificationClient
	// Patient is the client for interacting with the Patient builders.
	Patient *PatientClient
	// ScreeningAlert is the client for interacting with the ScreeningAlert builders.
	ScreeningAlert *ScreeningAlertClient
	// ScreeningResult is the client for interacting with the ScreeningResult builders.
	ScreeningResult *ScreeningResultClient
	// SelfCareExercise is the client for interacting with the SelfCareExercise builders.
	SelfCareExercise *SelfCareExerciseClient
	// TeleconsultReferral is the client for interacting with the TeleconsultReferral builders.
	TeleconsultReferral *TeleconsultReferralClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// UserSession is the client for interacting with the UserSession builders.
	UserSession *UserSessionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Conversation = NewConversationClient(c.config)
	c.Message = NewMessageClient(c.config)
	c.MoodEntry = NewMoodEntryClient(c.config)
	c.Notification = NewNotificationClient(c.config)
	c.Patient = NewPatientClient(c.config)
	c.ScreeningAlert = NewScreeningAlertClient(c.config)
	c.ScreeningResult = NewScreeningResultClient(c.config)
	c.SelfCareExercise = NewSelfCareExerciseClient(c.config)
	c.TeleconsultReferral = NewTeleconsultReferralClient(c.config)
	c.User = NewUserClient(c.config)
	c.UserSession = NewUserSessionClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("repo: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("repo: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                 ctx,
		config:              cfg,
		Conversation:        NewConversationClient(cfg),
		Message:             NewMessageClient(cfg),
		MoodEntry:           NewMoodEntryClient(cfg),
		Notification:        NewNotificationClient(cfg),
		Patient:             NewPatientClient(cfg),
		ScreeningAlert:      NewScreeningAlertClient(cfg),
		ScreeningResult:     NewScreeningResultClient(cfg),
		SelfCareExercise:    NewSelfCareExerciseClient(cfg),
		TeleconsultReferral: NewTeleconsultReferralClient(cfg),
		User:                NewUserClient(cfg),
		UserSession:         NewUserSessionClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                 ctx,
		config:              cfg,
		Conversation:        NewConversationClient(cfg),
		Message:             NewMessageClient(cfg),
		MoodEntry:           NewMoodEntryClient(cfg),
		Notification:        NewNotificationClient(cfg),
		Patient:             NewPatientClient(cfg),
		ScreeningAlert:      NewScreeningAlertClient(cfg),
		ScreeningResult:     NewScreeningResultClient(cfg),
		SelfCareExercise:    NewSelfCareExerciseClient(cfg),
		TeleconsultReferral: NewTeleconsultReferralClient(cfg),
		User:                NewUserClient(cfg),
		UserSession:         NewUserSessionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Conversation.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Conversation, c.Message, c.MoodEntry, c.Notification, c.Patient,
		c.ScreeningAlert, c.ScreeningResult, c.SelfCareExercise, c.TeleconsultReferral,
		c.User, c.UserSession,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Conversation, c.Message, c.MoodEntry, c.Notification, c.Patient,
		c.ScreeningAlert, c.ScreeningResult, c.SelfCareExercise, c.TeleconsultReferral,
		c.User, c.UserSession,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ConversationMutation:
		return c.Conversation.mutate(ctx, m)
	case *MessageMutation:
		return c.Message.mutate(ctx, m)
	case *MoodEntryMutation:
		return c.MoodEntry.mutate(ctx, m)
	case *NotificationMutation:
		return c.Notification.mutate(ctx, m)
	case *PatientMutation:
		return c.Patient.mutate(ctx, m)
	case *ScreeningAlertMutation:
		return c.ScreeningAlert.mutate(ctx, m)
	case *ScreeningResultMutation:
		return c.ScreeningResult.mutate(ctx, m)
	case *SelfCareExerciseMutation:
		return c.SelfCareExercise.mutate(ctx, m)
	case *TeleconsultReferralMutation:
		return c.TeleconsultReferral.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	case *UserSessionMutation:
		return c.UserSession.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("repo: unknown mutation type %T", m)
	}
}

// ConversationClient is a client for the Conversation schema.
type ConversationClient struct {
	config
}

// NewConversationClient returns a client for the Conversation from the given config.
func NewConversationClient(c config) *ConversationClient {
	return &ConversationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `conversation.Hooks(f(g(h())))`.
func (c *ConversationClient) Use(hooks ...Hook) {
	c.hooks.Conversation = append(c.hooks.Conversation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `conversation.Intercept(f(g(h())))`.
func (c *ConversationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Conversation = append(c.inters.Conversation, interceptors...)
}

// Create returns a builder for creating a Conversation entity.
func (c *ConversationClient) Create() *ConversationCreate {
	mutation := newConversationMutation(c.config, OpCreate)
	return &ConversationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Conversation entities.
func (c *ConversationClient) CreateBulk(builders ...*ConversationCreate) *ConversationCreateBulk {
	return &ConversationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConversationClient) MapCreateBulk(slice any, setFunc func(*ConversationCreate, int)) *ConversationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConversationCreateBulk{err: fmt.Errorf("calling to ConversationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConversationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConversationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Conversation.
func (c *ConversationClient) Update() *ConversationUpdate {
	mutation := newConversationMutation(c.config, OpUpdate)
	return &ConversationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConversationClient) UpdateOne(_m *Conversation) *ConversationUpdateOne {
	mutation := newConversationMutation(c.config, OpUpdateOne, withConversation(_m))
	return &ConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConversationClient) UpdateOneID(id uuid.UUID) *ConversationUpdateOne {
	mutation := newConversationMutation(c.config, OpUpdateOne, withConversationID(id))
	return &ConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Conversation.
func (c *ConversationClient) Delete() *ConversationDelete {
	mutation := newConversationMutation(c.config, OpDelete)
	return &ConversationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConversationClient) DeleteOne(_m *Conversation) *ConversationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConversationClient) DeleteOneID(id uuid.UUID) *ConversationDeleteOne {
	builder := c.Delete().Where(conversation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConversationDeleteOne{builder}
}

// Query returns a query builder for Conversation.
func (c *ConversationClient) Query() *ConversationQuery {
	return &ConversationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConversation},
		inters: c.Interceptors(),
	}
}

// Get returns a Conversation entity by its id.
func (c *ConversationClient) Get(ctx context.Context, id uuid.UUID) (*Conversation, error) {
	return c.Query().Where(conversation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConversationClient) GetX(ctx context.Context, id uuid.UUID) *Conversation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPatient queries the patient edge of a Conversation.
func (c *ConversationClient) QueryPatient(_m *Conversation) *PatientQuery {
	query := (&PatientClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(conversation.Table, conversation.FieldID, id),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, conversation.PatientTable, conversation.PatientColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMessages queries the messages edge of a Conversation.
func (c *ConversationClient) QueryMessages(_m *Conversation) *MessageQuery {
	query := (&MessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(conversation.Table, conversation.FieldID, id),
			sqlgraph.To(message.Table, message.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, conversation.MessagesTable, conversation.MessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ConversationClient) Hooks() []Hook {
	return c.hooks.Conversation
}

// Interceptors returns the client interceptors.
func (c *ConversationClient) Interceptors() []Interceptor {
	return c.inters.Conversation
}

func (c *ConversationClient) mutate(ctx context.Context, m *ConversationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConversationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConversationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConversationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Conversation mutation op: %q", m.Op())
	}
}

// MessageClient is a client for the Message schema.
type MessageClient struct {
	config
}

// NewMessageClient returns a client for the Message from the given config.
func NewMessageClient(c config) *MessageClient {
	return &MessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `message.Hooks(f(g(h())))`.
func (c *MessageClient) Use(hooks ...Hook) {
	c.hooks.Message = append(c.hooks.Message, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `message.Intercept(f(g(h())))`.
func (c *MessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.Message = append(c.inters.Message, interceptors...)
}

// Create returns a builder for creating a Message entity.
func (c *MessageClient) Create() *MessageCreate {
	mutation := newMessageMutation(c.config, OpCreate)
	return &MessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Message entities.
func (c *MessageClient) CreateBulk(builders ...*MessageCreate) *MessageCreateBulk {
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MessageClient) MapCreateBulk(slice any, setFunc func(*MessageCreate, int)) *MessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MessageCreateBulk{err: fmt.Errorf("calling to MessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Message.
func (c *MessageClient) Update() *MessageUpdate {
	mutation := newMessageMutation(c.config, OpUpdate)
	return &MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MessageClient) UpdateOne(_m *Message) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessage(_m))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MessageClient) UpdateOneID(id uuid.UUID) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessageID(id))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Message.
func (c *MessageClient) Delete() *MessageDelete {
	mutation := newMessageMutation(c.config, OpDelete)
	return &MessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MessageClient) DeleteOne(_m *Message) *MessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MessageClient) DeleteOneID(id uuid.UUID) *MessageDeleteOne {
	builder := c.Delete().Where(message.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MessageDeleteOne{builder}
}

// Query returns a query builder for Message.
func (c *MessageClient) Query() *MessageQuery {
	return &MessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a Message entity by its id.
func (c *MessageClient) Get(ctx context.Context, id uuid.UUID) (*Message, error) {
	return c.Query().Where(message.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageClient) GetX(ctx context.Context, id uuid.UUID) *Message {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryConversation queries the conversation edge of a Message.
func (c *MessageClient) QueryConversation(_m *Message) *ConversationQuery {
	query := (&ConversationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(message.Table, message.FieldID, id),
			sqlgraph.To(conversation.Table, conversation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, message.ConversationTable, message.ConversationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MessageClient) Hooks() []Hook {
	return c.hooks.Message
}

// Interceptors returns the client interceptors.
func (c *MessageClient) Interceptors() []Interceptor {
	return c.inters.Message
}

func (c *MessageClient) mutate(ctx context.Context, m *MessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Message mutation op: %q", m.Op())
	}
}

// MoodEntryClient is a client for the MoodEntry schema.
type MoodEntryClient struct {
	config
}

// NewMoodEntryClient returns a client for the MoodEntry from the given config.
func NewMoodEntryClient(c config) *MoodEntryClient {
	return &MoodEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `moodentry.Hooks(f(g(h())))`.
func (c *MoodEntryClient) Use(hooks ...Hook) {
	c.hooks.MoodEntry = append(c.hooks.MoodEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `moodentry.Intercept(f(g(h())))`.
func (c *MoodEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.MoodEntry = append(c.inters.MoodEntry, interceptors...)
}

// Create returns a builder for creating a MoodEntry entity.
func (c *MoodEntryClient) Create() *MoodEntryCreate {
	mutation := newMoodEntryMutation(c.config, OpCreate)
	return &MoodEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MoodEntry entities.
func (c *MoodEntryClient) CreateBulk(builders ...*MoodEntryCreate) *MoodEntryCreateBulk {
	return &MoodEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MoodEntryClient) MapCreateBulk(slice any, setFunc func(*MoodEntryCreate, int)) *MoodEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MoodEntryCreateBulk{err: fmt.Errorf("calling to MoodEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MoodEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MoodEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MoodEntry.
func (c *MoodEntryClient) Update() *MoodEntryUpdate {
	mutation := newMoodEntryMutation(c.config, OpUpdate)
	return &MoodEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MoodEntryClient) UpdateOne(_m *MoodEntry) *MoodEntryUpdateOne {
	mutation := newMoodEntryMutation(c.config, OpUpdateOne, withMoodEntry(_m))
	return &MoodEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MoodEntryClient) UpdateOneID(id uuid.UUID) *MoodEntryUpdateOne {
	mutation := newMoodEntryMutation(c.config, OpUpdateOne, withMoodEntryID(id))
	return &MoodEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MoodEntry.
func (c *MoodEntryClient) Delete() *MoodEntryDelete {
	mutation := newMoodEntryMutation(c.config, OpDelete)
	return &MoodEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MoodEntryClient) DeleteOne(_m *MoodEntry) *MoodEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MoodEntryClient) DeleteOneID(id uuid.UUID) *MoodEntryDeleteOne {
	builder := c.Delete().Where(moodentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MoodEntryDeleteOne{builder}
}

// Query returns a query builder for MoodEntry.
func (c *MoodEntryClient) Query() *MoodEntryQuery {
	return &MoodEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMoodEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a MoodEntry entity by its id.
func (c *MoodEntryClient) Get(ctx context.Context, id uuid.UUID) (*MoodEntry, error) {
	return c.Query().Where(moodentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MoodEntryClient) GetX(ctx context.Context, id uuid.UUID) *MoodEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPatient queries the patient edge of a MoodEntry.
func (c *MoodEntryClient) QueryPatient(_m *MoodEntry) *PatientQuery {
	query := (&PatientClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(moodentry.Table, moodentry.FieldID, id),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, moodentry.PatientTable, moodentry.PatientColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MoodEntryClient) Hooks() []Hook {
	return c.hooks.MoodEntry
}

// Interceptors returns the client interceptors.
func (c *MoodEntryClient) Interceptors() []Interceptor {
	return c.inters.MoodEntry
}

func (c *MoodEntryClient) mutate(ctx context.Context, m *MoodEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MoodEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MoodEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MoodEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MoodEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown MoodEntry mutation op: %q", m.Op())
	}
}

// NotificationClient is a client for the Notification schema.
type NotificationClient struct {
	config
}

// NewNotificationClient returns a client for the Notification from the given config.
func NewNotificationClient(c config) *NotificationClient {
	return &NotificationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `notification.Hooks(f(g(h())))`.
func (c *NotificationClient) Use(hooks ...Hook) {
	c.hooks.Notification = append(c.hooks.Notification, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `notification.Intercept(f(g(h())))`.
func (c *NotificationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Notification = append(c.inters.Notification, interceptors...)
}

// Create returns a builder for creating a Notification entity.
func (c *NotificationClient) Create() *NotificationCreate {
	mutation := newNotificationMutation(c.config, OpCreate)
	return &NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Notification entities.
func (c *NotificationClient) CreateBulk(builders ...*NotificationCreate) *NotificationCreateBulk {
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NotificationClient) MapCreateBulk(slice any, setFunc func(*NotificationCreate, int)) *NotificationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NotificationCreateBulk{err: fmt.Errorf("calling to NotificationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NotificationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Notification.
func (c *NotificationClient) Update() *NotificationUpdate {
	mutation := newNotificationMutation(c.config, OpUpdate)
	return &NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NotificationClient) UpdateOne(_m *Notification) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotification(_m))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NotificationClient) UpdateOneID(id uuid.UUID) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotificationID(id))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Notification.
func (c *NotificationClient) Delete() *NotificationDelete {
	mutation := newNotificationMutation(c.config, OpDelete)
	return &NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NotificationClient) DeleteOne(_m *Notification) *NotificationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NotificationClient) DeleteOneID(id uuid.UUID) *NotificationDeleteOne {
	builder := c.Delete().Where(notification.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NotificationDeleteOne{builder}
}

// Query returns a query builder for Notification.
func (c *NotificationClient) Query() *NotificationQuery {
	return &NotificationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNotification},
		inters: c.Interceptors(),
	}
}

// Get returns a Notification entity by its id.
func (c *NotificationClient) Get(ctx context.Context, id uuid.UUID) (*Notification, error) {
	return c.Query().Where(notification.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NotificationClient) GetX(ctx context.Context, id uuid.UUID) *Notification {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NotificationClient) Hooks() []Hook {
	return c.hooks.Notification
}

// Interceptors returns the client interceptors.
func (c *NotificationClient) Interceptors() []Interceptor {
	return c.inters.Notification
}

func (c *NotificationClient) mutate(ctx context.Context, m *NotificationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Notification mutation op: %q", m.Op())
	}
}

// PatientClient is a client for the Patient schema.
type PatientClient struct {
	config
}

// NewPatientClient returns a client for the Patient from the given config.
func NewPatientClient(c config) *PatientClient {
	return &PatientClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `patient.Hooks(f(g(h())))`.
func (c *PatientClient) Use(hooks ...Hook) {
	c.hooks.Patient = append(c.hooks.Patient, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `patient.Intercept(f(g(h())))`.
func (c *PatientClient) Intercept(interceptors ...Interceptor) {
	c.inters.Patient = append(c.inters.Patient, interceptors...)
}

// Create returns a builder for creating a Patient entity.
func (c *PatientClient) Create() *PatientCreate {
	mutation := newPatientMutation(c.config, OpCreate)
	return &PatientCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Patient entities.
func (c *PatientClient) CreateBulk(builders ...*PatientCreate) *PatientCreateBulk {
	return &PatientCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PatientClient) MapCreateBulk(slice any, setFunc func(*PatientCreate, int)) *PatientCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PatientCreateBulk{err: fmt.Errorf("calling to PatientClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PatientCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PatientCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Patient.
func (c *PatientClient) Update() *PatientUpdate {
	mutation := newPatientMutation(c.config, OpUpdate)
	return &PatientUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PatientClient) UpdateOne(_m *Patient) *PatientUpdateOne {
	mutation := newPatientMutation(c.config, OpUpdateOne, withPatient(_m))
	return &PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PatientClient) UpdateOneID(id uuid.UUID) *PatientUpdateOne {
	mutation := newPatientMutation(c.config, OpUpdateOne, withPatientID(id))
	return &PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Patient.
func (c *PatientClient) Delete() *PatientDelete {
	mutation := newPatientMutation(c.config, OpDelete)
	return &PatientDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PatientClient) DeleteOne(_m *Patient) *PatientDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PatientClient) DeleteOneID(id uuid.UUID) *PatientDeleteOne {
	builder := c.Delete().Where(patient.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PatientDeleteOne{builder}
}

// Query returns a query builder for Patient.
func (c *PatientClient) Query() *PatientQuery {
	return &PatientQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePatient},
		inters: c.Interceptors(),
	}
}

// Get returns a Patient entity by its id.
func (c *PatientClient) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return c.Query().Where(patient.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PatientClient) GetX(ctx context.Context, id uuid.UUID) *Patient {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a Patient.
func (c *PatientClient) QueryUser(_m *Patient) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patient.Table, patient.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, patient.UserTable, patient.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryScreenings queries the screenings edge of a Patient.
func (c *PatientClient) QueryScreenings(_m *Patient) *ScreeningResultQuery {
	query := (&ScreeningResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patient.Table, patient.FieldID, id),
			sqlgraph.To(screeningresult.Table, screeningresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, patient.ScreeningsTable, patient.ScreeningsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAlerts queries the alerts edge of a Patient.
func (c *PatientClient) QueryAlerts(_m *Patient) *ScreeningAlertQuery {
	query := (&ScreeningAlertClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patient.Table, patient.FieldID, id),
			sqlgraph.To(screeningalert.Table, screeningalert.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, patient.AlertsTable, patient.AlertsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryReferrals queries the referrals edge of a Patient.
func (c *PatientClient) QueryReferrals(_m *Patient) *TeleconsultReferralQuery {
	query := (&TeleconsultReferralClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patient.Table, patient.FieldID, id),
			sqlgraph.To(teleconsultreferral.Table, teleconsultreferral.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, patient.ReferralsTable, patient.ReferralsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryConversations queries the conversations edge of a Patient.
func (c *PatientClient) QueryConversations(_m *Patient) *ConversationQuery {
	query := (&ConversationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patient.Table, patient.FieldID, id),
			sqlgraph.To(conversation.Table, conversation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, patient.ConversationsTable, patient.ConversationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMoodEntries queries the mood_entries edge of a Patient.
func (c *PatientClient) QueryMoodEntries(_m *Patient) *MoodEntryQuery {
	query := (&MoodEntryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patient.Table, patient.FieldID, id),
			sqlgraph.To(moodentry.Table, moodentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, patient.MoodEntriesTable, patient.MoodEntriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PatientClient) Hooks() []Hook {
	return c.hooks.Patient
}

// Interceptors returns the client interceptors.
func (c *PatientClient) Interceptors() []Interceptor {
	return c.inters.Patient
}

func (c *PatientClient) mutate(ctx context.Context, m *PatientMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PatientCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PatientUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PatientDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Patient mutation op: %q", m.Op())
	}
}

// ScreeningAlertClient is a client for the ScreeningAlert schema.
type ScreeningAlertClient struct {
	config
}

// NewScreeningAlertClient returns a client for the ScreeningAlert from the given config.
func NewScreeningAlertClient(c config) *ScreeningAlertClient {
	return &ScreeningAlertClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `screeningalert.Hooks(f(g(h())))`.
func (c *ScreeningAlertClient) Use(hooks ...Hook) {
	c.hooks.ScreeningAlert = append(c.hooks.ScreeningAlert, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `screeningalert.Intercept(f(g(h())))`.
func (c *ScreeningAlertClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScreeningAlert = append(c.inters.ScreeningAlert, interceptors...)
}

// Create returns a builder for creating a ScreeningAlert entity.
func (c *ScreeningAlertClient) Create() *ScreeningAlertCreate {
	mutation := newScreeningAlertMutation(c.config, OpCreate)
	return &ScreeningAlertCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScreeningAlert entities.
func (c *ScreeningAlertClient) CreateBulk(builders ...*ScreeningAlertCreate) *ScreeningAlertCreateBulk {
	return &ScreeningAlertCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScreeningAlertClient) MapCreateBulk(slice any, setFunc func(*ScreeningAlertCreate, int)) *ScreeningAlertCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScreeningAlertCreateBulk{err: fmt.Errorf("calling to ScreeningAlertClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScreeningAlertCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScreeningAlertCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScreeningAlert.
func (c *ScreeningAlertClient) Update() *ScreeningAlertUpdate {
	mutation := newScreeningAlertMutation(c.config, OpUpdate)
	return &ScreeningAlertUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScreeningAlertClient) UpdateOne(_m *ScreeningAlert) *ScreeningAlertUpdateOne {
	mutation := newScreeningAlertMutation(c.config, OpUpdateOne, withScreeningAlert(_m))
	return &ScreeningAlertUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScreeningAlertClient) UpdateOneID(id uuid.UUID) *ScreeningAlertUpdateOne {
	mutation := newScreeningAlertMutation(c.config, OpUpdateOne, withScreeningAlertID(id))
	return &ScreeningAlertUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScreeningAlert.
func (c *ScreeningAlertClient) Delete() *ScreeningAlertDelete {
	mutation := newScreeningAlertMutation(c.config, OpDelete)
	return &ScreeningAlertDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScreeningAlertClient) DeleteOne(_m *ScreeningAlert) *ScreeningAlertDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScreeningAlertClient) DeleteOneID(id uuid.UUID) *ScreeningAlertDeleteOne {
	builder := c.Delete().Where(screeningalert.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScreeningAlertDeleteOne{builder}
}

// Query returns a query builder for ScreeningAlert.
func (c *ScreeningAlertClient) Query() *ScreeningAlertQuery {
	return &ScreeningAlertQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScreeningAlert},
		inters: c.Interceptors(),
	}
}

// Get returns a ScreeningAlert entity by its id.
func (c *ScreeningAlertClient) Get(ctx context.Context, id uuid.UUID) (*ScreeningAlert, error) {
	return c.Query().Where(screeningalert.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScreeningAlertClient) GetX(ctx context.Context, id uuid.UUID) *ScreeningAlert {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPatient queries the patient edge of a ScreeningAlert.
func (c *ScreeningAlertClient) QueryPatient(_m *ScreeningAlert) *PatientQuery {
	query := (&PatientClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(screeningalert.Table, screeningalert.FieldID, id),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, screeningalert.PatientTable, screeningalert.PatientColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryScreening queries the screening edge of a ScreeningAlert.
func (c *ScreeningAlertClient) QueryScreening(_m *ScreeningAlert) *ScreeningResultQuery {
	query := (&ScreeningResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(screeningalert.Table, screeningalert.FieldID, id),
			sqlgraph.To(screeningresult.Table, screeningresult.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, screeningalert.ScreeningTable, screeningalert.ScreeningColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ScreeningAlertClient) Hooks() []Hook {
	return c.hooks.ScreeningAlert
}

// Interceptors returns the client interceptors.
func (c *ScreeningAlertClient) Interceptors() []Interceptor {
	return c.inters.ScreeningAlert
}

func (c *ScreeningAlertClient) mutate(ctx context.Context, m *ScreeningAlertMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScreeningAlertCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScreeningAlertUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScreeningAlertUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScreeningAlertDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown ScreeningAlert mutation op: %q", m.Op())
	}
}

// ScreeningResultClient is a client for the ScreeningResult schema.
type ScreeningResultClient struct {
	config
}

// NewScreeningResultClient returns a client for the ScreeningResult from the given config.
func NewScreeningResultClient(c config) *ScreeningResultClient {
	return &ScreeningResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `screeningresult.Hooks(f(g(h())))`.
func (c *ScreeningResultClient) Use(hooks ...Hook) {
	c.hooks.ScreeningResult = append(c.hooks.ScreeningResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `screeningresult.Intercept(f(g(h())))`.
func (c *ScreeningResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScreeningResult = append(c.inters.ScreeningResult, interceptors...)
}

// Create returns a builder for creating a ScreeningResult entity.
func (c *ScreeningResultClient) Create() *ScreeningResultCreate {
	mutation := newScreeningResultMutation(c.config, OpCreate)
	return &ScreeningResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScreeningResult entities.
func (c *ScreeningResultClient) CreateBulk(builders ...*ScreeningResultCreate) *ScreeningResultCreateBulk {
	return &ScreeningResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScreeningResultClient) MapCreateBulk(slice any, setFunc func(*ScreeningResultCreate, int)) *ScreeningResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScreeningResultCreateBulk{err: fmt.Errorf("calling to ScreeningResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScreeningResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScreeningResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScreeningResult.
func (c *ScreeningResultClient) Update() *ScreeningResultUpdate {
	mutation := newScreeningResultMutation(c.config, OpUpdate)
	return &ScreeningResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScreeningResultClient) UpdateOne(_m *ScreeningResult) *ScreeningResultUpdateOne {
	mutation := newScreeningResultMutation(c.config, OpUpdateOne, withScreeningResult(_m))
	return &ScreeningResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScreeningResultClient) UpdateOneID(id uuid.UUID) *ScreeningResultUpdateOne {
	mutation := newScreeningResultMutation(c.config, OpUpdateOne, withScreeningResultID(id))
	return &ScreeningResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScreeningResult.
func (c *ScreeningResultClient) Delete() *ScreeningResultDelete {
	mutation := newScreeningResultMutation(c.config, OpDelete)
	return &ScreeningResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScreeningResultClient) DeleteOne(_m *ScreeningResult) *ScreeningResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScreeningResultClient) DeleteOneID(id uuid.UUID) *ScreeningResultDeleteOne {
	builder := c.Delete().Where(screeningresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScreeningResultDeleteOne{builder}
}

// Query returns a query builder for ScreeningResult.
func (c *ScreeningResultClient) Query() *ScreeningResultQuery {
	return &ScreeningResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScreeningResult},
		inters: c.Interceptors(),
	}
}

// Get returns a ScreeningResult entity by its id.
func (c *ScreeningResultClient) Get(ctx context.Context, id uuid.UUID) (*ScreeningResult, error) {
	return c.Query().Where(screeningresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScreeningResultClient) GetX(ctx context.Context, id uuid.UUID) *ScreeningResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPatient queries the patient edge of a ScreeningResult.
func (c *ScreeningResultClient) QueryPatient(_m *ScreeningResult) *PatientQuery {
	query := (&PatientClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(screeningresult.Table, screeningresult.FieldID, id),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, screeningresult.PatientTable, screeningresult.PatientColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAlert queries the alert edge of a ScreeningResult.
func (c *ScreeningResultClient) QueryAlert(_m *ScreeningResult) *ScreeningAlertQuery {
	query := (&ScreeningAlertClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(screeningresult.Table, screeningresult.FieldID, id),
			sqlgraph.To(screeningalert.Table, screeningalert.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, screeningresult.AlertTable, screeningresult.AlertColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryReferral queries the referral edge of a ScreeningResult.
func (c *ScreeningResultClient) QueryReferral(_m *ScreeningResult) *TeleconsultReferralQuery {
	query := (&TeleconsultReferralClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(screeningresult.Table, screeningresult.FieldID, id),
			sqlgraph.To(teleconsultreferral.Table, teleconsultreferral.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, screeningresult.ReferralTable, screeningresult.ReferralColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ScreeningResultClient) Hooks() []Hook {
	return c.hooks.ScreeningResult
}

// Interceptors returns the client interceptors.
func (c *ScreeningResultClient) Interceptors() []Interceptor {
	return c.inters.ScreeningResult
}

func (c *ScreeningResultClient) mutate(ctx context.Context, m *ScreeningResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScreeningResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScreeningResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScreeningResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScreeningResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown ScreeningResult mutation op: %q", m.Op())
	}
}

// SelfCareExerciseClient is a client for the SelfCareExercise schema.
type SelfCareExerciseClient struct {
	config
}

// NewSelfCareExerciseClient returns a client for the SelfCareExercise from the given config.
func NewSelfCareExerciseClient(c config) *SelfCareExerciseClient {
	return &SelfCareExerciseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `selfcareexercise.Hooks(f(g(h())))`.
func (c *SelfCareExerciseClient) Use(hooks ...Hook) {
	c.hooks.SelfCareExercise = append(c.hooks.SelfCareExercise, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `selfcareexercise.Intercept(f(g(h())))`.
func (c *SelfCareExerciseClient) Intercept(interceptors ...Interceptor) {
	c.inters.SelfCareExercise = append(c.inters.SelfCareExercise, interceptors...)
}

// Create returns a builder for creating a SelfCareExercise entity.
func (c *SelfCareExerciseClient) Create() *SelfCareExerciseCreate {
	mutation := newSelfCareExerciseMutation(c.config, OpCreate)
	return &SelfCareExerciseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SelfCareExercise entities.
func (c *SelfCareExerciseClient) CreateBulk(builders ...*SelfCareExerciseCreate) *SelfCareExerciseCreateBulk {
	return &SelfCareExerciseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SelfCareExerciseClient) MapCreateBulk(slice any, setFunc func(*SelfCareExerciseCreate, int)) *SelfCareExerciseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SelfCareExerciseCreateBulk{err: fmt.Errorf("calling to SelfCareExerciseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SelfCareExerciseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SelfCareExerciseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SelfCareExercise.
func (c *SelfCareExerciseClient) Update() *SelfCareExerciseUpdate {
	mutation := newSelfCareExerciseMutation(c.config, OpUpdate)
	return &SelfCareExerciseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SelfCareExerciseClient) UpdateOne(_m *SelfCareExercise) *SelfCareExerciseUpdateOne {
	mutation := newSelfCareExerciseMutation(c.config, OpUpdateOne, withSelfCareExercise(_m))
	return &SelfCareExerciseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SelfCareExerciseClient) UpdateOneID(id uuid.UUID) *SelfCareExerciseUpdateOne {
	mutation := newSelfCareExerciseMutation(c.config, OpUpdateOne, withSelfCareExerciseID(id))
	return &SelfCareExerciseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SelfCareExercise.
func (c *SelfCareExerciseClient) Delete() *SelfCareExerciseDelete {
	mutation := newSelfCareExerciseMutation(c.config, OpDelete)
	return &SelfCareExerciseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SelfCareExerciseClient) DeleteOne(_m *SelfCareExercise) *SelfCareExerciseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SelfCareExerciseClient) DeleteOneID(id uuid.UUID) *SelfCareExerciseDeleteOne {
	builder := c.Delete().Where(selfcareexercise.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SelfCareExerciseDeleteOne{builder}
}

// Query returns a query builder for SelfCareExercise.
func (c *SelfCareExerciseClient) Query() *SelfCareExerciseQuery {
	return &SelfCareExerciseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSelfCareExercise},
		inters: c.Interceptors(),
	}
}

// Get returns a SelfCareExercise entity by its id.
func (c *SelfCareExerciseClient) Get(ctx context.Context, id uuid.UUID) (*SelfCareExercise, error) {
	return c.Query().Where(selfcareexercise.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SelfCareExerciseClient) GetX(ctx context.Context, id uuid.UUID) *SelfCareExercise {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SelfCareExerciseClient) Hooks() []Hook {
	return c.hooks.SelfCareExercise
}

// Interceptors returns the client interceptors.
func (c *SelfCareExerciseClient) Interceptors() []Interceptor {
	return c.inters.SelfCareExercise
}

func (c *SelfCareExerciseClient) mutate(ctx context.Context, m *SelfCareExerciseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SelfCareExerciseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SelfCareExerciseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SelfCareExerciseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SelfCareExerciseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown SelfCareExercise mutation op: %q", m.Op())
	}
}

// TeleconsultReferralClient is a client for the TeleconsultReferral schema.
type TeleconsultReferralClient struct {
	config
}

// NewTeleconsultReferralClient returns a client for the TeleconsultReferral from the given config.
func NewTeleconsultReferralClient(c config) *TeleconsultReferralClient {
	return &TeleconsultReferralClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `teleconsultreferral.Hooks(f(g(h())))`.
func (c *TeleconsultReferralClient) Use(hooks ...Hook) {
	c.hooks.TeleconsultReferral = append(c.hooks.TeleconsultReferral, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `teleconsultreferral.Intercept(f(g(h())))`.
func (c *TeleconsultReferralClient) Intercept(interceptors ...Interceptor) {
	c.inters.TeleconsultReferral = append(c.inters.TeleconsultReferral, interceptors...)
}

// Create returns a builder for creating a TeleconsultReferral entity.
func (c *TeleconsultReferralClient) Create() *TeleconsultReferralCreate {
	mutation := newTeleconsultReferralMutation(c.config, OpCreate)
	return &TeleconsultReferralCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TeleconsultReferral entities.
func (c *TeleconsultReferralClient) CreateBulk(builders ...*TeleconsultReferralCreate) *TeleconsultReferralCreateBulk {
	return &TeleconsultReferralCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TeleconsultReferralClient) MapCreateBulk(slice any, setFunc func(*TeleconsultReferralCreate, int)) *TeleconsultReferralCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TeleconsultReferralCreateBulk{err: fmt.Errorf("calling to TeleconsultReferralClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TeleconsultReferralCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TeleconsultReferralCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TeleconsultReferral.
func (c *TeleconsultReferralClient) Update() *TeleconsultReferralUpdate {
	mutation := newTeleconsultReferralMutation(c.config, OpUpdate)
	return &TeleconsultReferralUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TeleconsultReferralClient) UpdateOne(_m *TeleconsultReferral) *TeleconsultReferralUpdateOne {
	mutation := newTeleconsultReferralMutation(c.config, OpUpdateOne, withTeleconsultReferral(_m))
	return &TeleconsultReferralUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TeleconsultReferralClient) UpdateOneID(id uuid.UUID) *TeleconsultReferralUpdateOne {
	mutation := newTeleconsultReferralMutation(c.config, OpUpdateOne, withTeleconsultReferralID(id))
	return &TeleconsultReferralUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TeleconsultReferral.
func (c *TeleconsultReferralClient) Delete() *TeleconsultReferralDelete {
	mutation := newTeleconsultReferralMutation(c.config, OpDelete)
	return &TeleconsultReferralDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TeleconsultReferralClient) DeleteOne(_m *TeleconsultReferral) *TeleconsultReferralDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TeleconsultReferralClient) DeleteOneID(id uuid.UUID) *TeleconsultReferralDeleteOne {
	builder := c.Delete().Where(teleconsultreferral.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TeleconsultReferralDeleteOne{builder}
}

// Query returns a query builder for TeleconsultReferral.
func (c *TeleconsultReferralClient) Query() *TeleconsultReferralQuery {
	return &TeleconsultReferralQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTeleconsultReferral},
		inters: c.Interceptors(),
	}
}

// Get returns a TeleconsultReferral entity by its id.
func (c *TeleconsultReferralClient) Get(ctx context.Context, id uuid.UUID) (*TeleconsultReferral, error) {
	return c.Query().Where(teleconsultreferral.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TeleconsultReferralClient) GetX(ctx context.Context, id uuid.UUID) *TeleconsultReferral {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPatient queries the patient edge of a TeleconsultReferral.
func (c *TeleconsultReferralClient) QueryPatient(_m *TeleconsultReferral) *PatientQuery {
	query := (&PatientClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(teleconsultreferral.Table, teleconsultreferral.FieldID, id),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, teleconsultreferral.PatientTable, teleconsultreferral.PatientColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryScreening queries the screening edge of a TeleconsultReferral.
func (c *TeleconsultReferralClient) QueryScreening(_m *TeleconsultReferral) *ScreeningResultQuery {
	query := (&ScreeningResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(teleconsultreferral.Table, teleconsultreferral.FieldID, id),
			sqlgraph.To(screeningresult.Table, screeningresult.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, teleconsultreferral.ScreeningTable, teleconsultreferral.ScreeningColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TeleconsultReferralClient) Hooks() []Hook {
	return c.hooks.TeleconsultReferral
}

// Interceptors returns the client interceptors.
func (c *TeleconsultReferralClient) Interceptors() []Interceptor {
	return c.inters.TeleconsultReferral
}

func (c *TeleconsultReferralClient) mutate(ctx context.Context, m *TeleconsultReferralMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TeleconsultReferralCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TeleconsultReferralUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TeleconsultReferralUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TeleconsultReferralDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown TeleconsultReferral mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id uuid.UUID) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id uuid.UUID) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id uuid.UUID) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown User mutation op: %q", m.Op())
	}
}

// UserSessionClient is a client for the UserSession schema.
type UserSessionClient struct {
	config
}

// NewUserSessionClient returns a client for the UserSession from the given config.
func NewUserSessionClient(c config) *UserSessionClient {
	return &UserSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `usersession.Hooks(f(g(h())))`.
func (c *UserSessionClient) Use(hooks ...Hook) {
	c.hooks.UserSession = append(c.hooks.UserSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `usersession.Intercept(f(g(h())))`.
func (c *UserSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserSession = append(c.inters.UserSession, interceptors...)
}

// Create returns a builder for creating a UserSession entity.
func (c *UserSessionClient) Create() *UserSessionCreate {
	mutation := newUserSessionMutation(c.config, OpCreate)
	return &UserSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserSession entities.
func (c *UserSessionClient) CreateBulk(builders ...*UserSessionCreate) *UserSessionCreateBulk {
	return &UserSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserSessionClient) MapCreateBulk(slice any, setFunc func(*UserSessionCreate, int)) *UserSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserSessionCreateBulk{err: fmt.Errorf("calling to UserSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserSession.
func (c *UserSessionClient) Update() *UserSessionUpdate {
	mutation := newUserSessionMutation(c.config, OpUpdate)
	return &UserSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserSessionClient) UpdateOne(_m *UserSession) *UserSessionUpdateOne {
	mutation := newUserSessionMutation(c.config, OpUpdateOne, withUserSession(_m))
	return &UserSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserSessionClient) UpdateOneID(id uuid.UUID) *UserSessionUpdateOne {
	mutation := newUserSessionMutation(c.config, OpUpdateOne, withUserSessionID(id))
	return &UserSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserSession.
func (c *UserSessionClient) Delete() *UserSessionDelete {
	mutation := newUserSessionMutation(c.config, OpDelete)
	return &UserSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserSessionClient) DeleteOne(_m *UserSession) *UserSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserSessionClient) DeleteOneID(id uuid.UUID) *UserSessionDeleteOne {
	builder := c.Delete().Where(usersession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserSessionDeleteOne{builder}
}

// Query returns a query builder for UserSession.
func (c *UserSessionClient) Query() *UserSessionQuery {
	return &UserSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserSession},
		inters: c.Interceptors(),
	}
}

// Get returns a UserSession entity by its id.
func (c *UserSessionClient) Get(ctx context.Context, id uuid.UUID) (*UserSession, error) {
	return c.Query().Where(usersession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserSessionClient) GetX(ctx context.Context, id uuid.UUID) *UserSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a UserSession.
func (c *UserSessionClient) QueryUser(_m *UserSession) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(usersession.Table, usersession.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, usersession.UserTable, usersession.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserSessionClient) Hooks() []Hook {
	return c.hooks.UserSession
}

// Interceptors returns the client interceptors.
func (c *UserSessionClient) Interceptors() []Interceptor {
	return c.inters.UserSession
}

func (c *UserSessionClient) mutate(ctx context.Context, m *UserSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown UserSession mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Conversation, Message, MoodEntry, Notification, Patient, ScreeningAlert,
		ScreeningResult, SelfCareExercise, TeleconsultReferral, User,
		UserSession []ent.Hook
	}
	inters struct {
		Conversation, Message, MoodEntry, Notification, Patient, ScreeningAlert,
		ScreeningResult, SelfCareExercise, TeleconsultReferral, User,
		UserSession []ent.Interceptor
	}
)
