package models

// RegisterRequest is the body of POST /api/users/register.
type RegisterRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

// LoginRequest is the body of POST /api/users/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PostRequest is the body of POST /api/posts and POST /api/posts/comment/:id.
// Name and Avatar are optional author snapshots; the caller's stored values
// are used when they are empty.
type PostRequest struct {
	Text   string `json:"text"`
	Name   string `json:"name,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// ProfileRequest is the body of POST /api/profile. Skills is a
// comma-separated list.
type ProfileRequest struct {
	Handle         string `json:"handle"`
	Company        string `json:"company,omitempty"`
	Website        string `json:"website,omitempty"`
	Location       string `json:"location,omitempty"`
	Status         string `json:"status"`
	Skills         string `json:"skills"`
	Bio            string `json:"bio,omitempty"`
	GithubUsername string `json:"githubusername,omitempty"`
	Youtube        string `json:"youtube,omitempty"`
	Twitter        string `json:"twitter,omitempty"`
	Facebook       string `json:"facebook,omitempty"`
	Linkedin       string `json:"linkedin,omitempty"`
	Instagram      string `json:"instagram,omitempty"`
}

// ExperienceRequest is the body of POST /api/profile/experience.
type ExperienceRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	From        Date   `json:"from"`
	To          *Date  `json:"to,omitempty"`
	Current     bool   `json:"current"`
	Description string `json:"description,omitempty"`
}

// EducationRequest is the body of POST /api/profile/education.
type EducationRequest struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldofstudy"`
	From         Date   `json:"from"`
	To           *Date  `json:"to,omitempty"`
	Current      bool   `json:"current"`
	Description  string `json:"description,omitempty"`
}
