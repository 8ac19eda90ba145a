// Package model defines the persistent entities of the devfolio backend.
package model

import (
	"database/sql/driver"

	"devfolio/util/common"

	"github.com/goccy/go-json"
)

// User is an administrative credential record. Passwords are stored as
// bcrypt hashes, never plaintext.
type User struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"uniqueIndex"`
	Password string `json:"-"`
}

// StringList is a []string stored as a JSON text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (l *StringList) Scan(value any) error {
	data, err := columnBytes(value)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		*l = StringList{}
		return nil
	}
	items := make([]string, 0)
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*l = items
	return nil
}

type Project struct {
	Id          int        `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string     `json:"title" gorm:"index"`
	Description string     `json:"description"`
	GithubLink  *string    `json:"github_link"`
	Images      StringList `json:"images" gorm:"type:text"`
	Tags        StringList `json:"tags" gorm:"type:text"`
}

// Skill is one entry of the CV skill list, stored inside the skills JSON
// column rather than as its own table.
type Skill struct {
	Name           string `json:"name"`
	Level          string `json:"level"`
	Description    string `json:"description"`
	CertificateUrl string `json:"certificate_url"`
}

// SkillList is a []Skill stored as a JSON text column.
type SkillList []Skill

func (l SkillList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]Skill(l))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (l *SkillList) Scan(value any) error {
	data, err := columnBytes(value)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		*l = SkillList{}
		return nil
	}
	items := make([]Skill, 0)
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*l = items
	return nil
}

// CV is a singleton record: at most one row ever exists.
type CV struct {
	Id         int       `json:"id" gorm:"primaryKey;autoIncrement"`
	About      string    `json:"about"`
	Experience string    `json:"experience"`
	Education  string    `json:"education"`
	PhotoUrl   string    `json:"photo_url"`
	Skills     SkillList `json:"skills" gorm:"type:text"`
}

func (CV) TableName() string {
	return "cv"
}

// Translation is one UI string, keyed by (language, key). The composite
// unique index keeps upserts deterministic.
type Translation struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Language string `json:"language" gorm:"index;uniqueIndex:idx_translations_lang_key"`
	Key      string `json:"key" gorm:"index;uniqueIndex:idx_translations_lang_key"`
	Value    string `json:"value"`
}

// Setting is an internal key/value row for server-generated state such as
// the token signing secret.
type Setting struct {
	Id    int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Key   string `json:"key" gorm:"uniqueIndex"`
	Value string `json:"value"`
}

func columnBytes(value any) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, common.NewErrorf("unsupported column type %T", value)
	}
}
