package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type ProfileVariant string

const (
	VariantProfessional ProfileVariant = "professional"
	VariantPersonal     ProfileVariant = "personal"
)

func (v ProfileVariant) Valid() bool {
	return v == VariantProfessional || v == VariantPersonal
}

type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityNearby  Visibility = "nearby"
	VisibilityPrivate Visibility = "private"
)

func (v Visibility) Valid() bool {
	return v == VisibilityPublic || v == VisibilityNearby || v == VisibilityPrivate
}

type Experience struct {
	Company string `json:"company"`
	Role    string `json:"role"`
	From    string `json:"from"`
	To      string `json:"to"`
}

type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Year        string `json:"year"`
}

type Prompt struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ProfessionalDetails holds the attributes specific to the professional
// variant. Stored as a single jsonb column.
type ProfessionalDetails struct {
	Experience  []Experience `json:"experience"`
	Education   []Education  `json:"education"`
	Skills      []string     `json:"skills"`
	LinkedinURL *string      `json:"linkedin_url,omitempty"`
	GithubURL   *string      `json:"github_url,omitempty"`
	OpenToWork  bool         `json:"open_to_work"`
}

func (d *ProfessionalDetails) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	return json.Marshal(d)
}

func (d *ProfessionalDetails) Scan(src interface{}) error {
	return scanJSON(src, d)
}

// PersonalDetails holds the attributes specific to the personal variant.
type PersonalDetails struct {
	Hobbies          []string `json:"hobbies"`
	InstagramHandle  *string  `json:"instagram_handle,omitempty"`
	RelationshipGoal *string  `json:"relationship_goal,omitempty"`
	Zodiac           *string  `json:"zodiac,omitempty"`
	Prompts          []Prompt `json:"prompts"`
}

func (d *PersonalDetails) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	return json.Marshal(d)
}

func (d *PersonalDetails) Scan(src interface{}) error {
	return scanJSON(src, d)
}

// Profile is a tagged variant over a common base: Variant selects which of
// Professional/Personal carries the variant-specific attributes. A user owns
// at most one profile per variant.
type Profile struct {
	ID           string               `json:"id" db:"id"`
	UserID       string               `json:"user_id" db:"user_id"`
	Variant      ProfileVariant       `json:"profile_variant" db:"profile_variant"`
	Name         *string              `json:"name,omitempty" db:"name"`
	Headline     string               `json:"headline" db:"headline"`
	Bio          string               `json:"bio" db:"bio"`
	Visibility   Visibility           `json:"visibility" db:"visibility"`
	Professional *ProfessionalDetails `json:"professional,omitempty" db:"professional"`
	Personal     *PersonalDetails     `json:"personal,omitempty" db:"personal"`
	CreatedAt    time.Time            `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at" db:"updated_at"`
}

func scanJSON(src, dst interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported scan type %T", src)
	}
}
