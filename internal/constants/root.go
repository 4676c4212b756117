package constants

import "time"

// Theme represents the display theme stored in the snapshot
type Theme string

// TaskPriority represents the priority of a task
type TaskPriority string

// TaskStatus represents the lifecycle state of a task
type TaskStatus string

// MessageSender represents who authored a chat message
type MessageSender string

const (
	AppName           = "lifelog"
	DefaultConfigPath = "~/.config/lifelog/lifelog.db"
	Version           = "v0.3.0"

	// DefaultAPIURL is the remote LifeLog API used when LIFELOG_API_URL is unset
	DefaultAPIURL = "http://localhost:5000"

	// SnapshotKeyPrefix namespaces one persisted snapshot per user identity.
	// The full key is "<prefix>:<userID>" (or the guest key below).
	SnapshotKeyPrefix = "lifelog:data:v2"

	// GuestUserID is the identity used for unauthenticated sessions
	GuestUserID = "guest"

	// LocalIDPrefix marks client-issued ids that the remote store has not
	// acknowledged yet. Canonical ids never carry this prefix.
	LocalIDPrefix = "local-"

	// KeyringSessionUser is the keyring account name holding the session
	KeyringSessionUser = "session"

	// DateFormat is the calendar-day format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// LoginTimeout bounds the identity-provider login call
	LoginTimeout = 30 * time.Second

	// DefaultMood seeds a snapshot that has never recorded a mood
	DefaultMood = "😊 Happy"

	// WelcomeMessage is the coach greeting seeded into a fresh snapshot
	WelcomeMessage = "Hey! How are you feeling today?"

	// DefaultPageSize is the journal page size used by list commands
	DefaultPageSize = 10

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "lifelog-"

	// Themes
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"

	// Task priorities
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"

	// Task statuses
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in-progress"
	StatusCompleted  TaskStatus = "completed"

	// Message senders
	SenderUser MessageSender = "user"
	SenderAI   MessageSender = "ai"
)

// DefaultHabitNames seeds a first-run snapshot
var DefaultHabitNames = []string{"Read 30 mins", "Exercise 20 mins", "Meditate"}

// DefaultInsights seeds a first-run snapshot
var DefaultInsights = []string{"Stay consistent!", "Reflect on progress weekly."}
