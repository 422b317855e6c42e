package web

import (
	"embed"
	"html/template"
	"strings"

	"github.com/MGTheTrain/kudos/internal/domain/kudos"
	"github.com/MGTheTrain/kudos/internal/domain/users"
	"github.com/MGTheTrain/kudos/internal/pkg/validators"
)

//go:embed templates/*.html
var templateFS embed.FS

// Template names
const (
	loginTemplate   = "login.html"
	homeTemplate    = "home.html"
	kudoTemplate    = "kudo.html"
	profileTemplate = "profile.html"
)

// LoadTemplates parses the embedded page templates
func LoadTemplates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"cssColor": func(c kudos.Color) string {
			return strings.ToLower(string(c))
		},
	}).ParseFS(templateFS, "templates/*.html")
}

type page struct {
	Title string
	User  *users.User
}

type loginPage struct {
	page
	Form LoginFormState
}

type homePage struct {
	page
	Users       []*users.User
	Recent      []*kudos.Kudo
	Kudos       []*kudos.Kudo
	Filter      string
	SortBy      string
	SortOptions []struct {
		Value string
		Label string
	}
	Error string
}

type kudoPage struct {
	page
	Recipient *users.User
	Message   string
	Style     kudos.KudoStyle
	Colors    []kudos.Color
	Emojis    []kudos.Emoji
	Error     string
}

type profilePage struct {
	page
	Fields      ProfileFields
	Errors      validators.FieldErrors
	FormError   string
	Departments []users.Department
	MaxAvatar   int64
}
