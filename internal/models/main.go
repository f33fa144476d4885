package models

// ModelRegistry lists every model handled by gorm auto-migration.
var ModelRegistry = []any{
	&WaitlistEntry{},
}
