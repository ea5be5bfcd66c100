package common

// Storage keys of the local key/value store. Employees and users keep the
// key names of the legacy browser data so imported snapshots load as is.
const (
	KeyEmployees     = "employees"
	KeyUsers         = "users"
	KeySession       = "session"
	KeySessionSecret = "session_secret"
)
