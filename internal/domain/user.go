package domain

// User is the read model for an account, with cargo and zone descriptions
// already joined in. Zona holds the stored description; handlers rewrite the
// catch-all sentinel before it leaves the service.
type User struct {
	ID           string
	Username     string
	PasswordHash *string
	Name         string
	RoleCode     RoleCode
	Cargo        *string
	Zona         *string
	Active       bool
}

// UserWrite carries an account create or update. Cargo and Zona are
// lookup-table descriptions resolved to IDs at write time; a PasswordHash of
// nil means "leave the stored hash untouched" on update and a NULL hash on
// insert.
type UserWrite struct {
	ID           string
	Username     string
	PasswordHash *string
	Name         string
	RoleCode     RoleCode
	Cargo        string
	Zona         string
	Active       bool
}
