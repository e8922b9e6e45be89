package models

import "time"

// Profile is the developer profile owned by exactly one user.
type Profile struct {
	ID             string       `json:"_id"`
	User           UserRef      `json:"user"`
	Handle         string       `json:"handle"`
	Company        string       `json:"company,omitempty"`
	Website        string       `json:"website,omitempty"`
	Location       string       `json:"location,omitempty"`
	Status         string       `json:"status"`
	Skills         []string     `json:"skills"`
	Bio            string       `json:"bio,omitempty"`
	GithubUsername string       `json:"githubusername,omitempty"`
	Social         Social       `json:"social"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	Date           time.Time    `json:"date"`
}

// TableName returns the name of the database table
// associated with the Profile model.
func (p Profile) TableName() string {
	return "profiles"
}

// Social holds the optional social network links of a profile.
type Social struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// Experience is a single job record of a profile.
// A nil To means the position is ongoing.
type Experience struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	From        Date   `json:"from"`
	To          *Date  `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description,omitempty"`
}

// Education is a single school record of a profile.
// A nil To means the studies are ongoing.
type Education struct {
	ID           string `json:"_id"`
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldofstudy"`
	From         Date   `json:"from"`
	To           *Date  `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description,omitempty"`
}
