package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type Roles []string

// Value implements driver.Valuer for GORM.
func (r Roles) Value() (driver.Value, error) {
	if len(r) == 0 {
		return json.Marshal([]string{RoleUser})
	}
	return json.Marshal(r)
}

// Scan implements sql.Scanner for GORM.
func (r *Roles) Scan(value interface{}) error {
	if value == nil {
		*r = Roles{RoleUser}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	default:
		return errors.New("unsupported type for Roles")
	}
}

func GetDefaultRoles() Roles {
	return Roles{RoleUser}
}
