package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// ── Type personnalisé PostgreSQL TEXT[] ──

// StringArray correspond au type PostgreSQL TEXT[], avec les interfaces
// Scanner/Valuer de GORM. Utilisé pour les listes d'absents.
type StringArray []string

// Scan analyse le texte {a,b,"c d"} renvoyé par PostgreSQL en []string.
func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = nil
		return nil
	}
	var s string
	switch v := src.(type) {
	case []byte:
		s = string(v)
	case string:
		s = v
	default:
		return fmt.Errorf("StringArray.Scan: type non géré %T", src)
	}
	s = strings.Trim(s, "{}")
	if s == "" {
		*a = StringArray{}
		return nil
	}
	var (
		arr      StringArray
		cur      strings.Builder
		inQuotes bool
		escaped  bool
	)
	for _, r := range s {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			arr = append(arr, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	arr = append(arr, cur.String())
	*a = arr
	return nil
}

// Value sérialise []string vers le format texte {a,"b c"} de PostgreSQL.
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	parts := make([]string, len(a))
	for i, s := range a {
		escaped := strings.ReplaceAll(s, `\`, `\\`)
		escaped = strings.ReplaceAll(escaped, `"`, `\"`)
		parts[i] = `"` + escaped + `"`
	}
	return "{" + strings.Join(parts, ",") + "}", nil
}

// BaseModel champs d'audit communs
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}
