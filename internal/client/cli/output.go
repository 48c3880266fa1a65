package cli

import (
	"encoding/json"
	"fmt"
	"text/template"

	"gopkg.in/yaml.v3"
)

// Форматы вывода
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// render пишет text через шаблон, json и yaml из structured
func (c *Cli) render(format string, tmpl *template.Template, text, structured any) error {
	switch format {
	case "", FormatText:
		return tmpl.Execute(c.io, text)
	case FormatJSON:
		enc := json.NewEncoder(c.io)
		enc.SetIndent("", "  ")
		return enc.Encode(structured)
	case FormatYAML:
		enc := yaml.NewEncoder(c.io)
		enc.SetIndent(2)
		if err := enc.Encode(structured); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q (use text, json or yaml)", ErrUnknownFormat, format)
	}
}

type statusView struct {
	Active   string `json:"active" yaml:"active"`
	LoggedIn bool   `json:"logged_in" yaml:"logged_in"`
	Password bool   `json:"password" yaml:"password"`
	Apple    bool   `json:"apple" yaml:"apple"`
	Kakao    bool   `json:"kakao" yaml:"kakao"`
}

type userView struct {
	Provider    string `json:"provider" yaml:"provider"`
	ID          string `json:"id" yaml:"id"`
	UID         string `json:"uid,omitempty" yaml:"uid,omitempty"`
	DisplayName string `json:"display_name" yaml:"display_name"`
	Email       string `json:"email,omitempty" yaml:"email,omitempty"`
	PhotoURL    string `json:"photo_url,omitempty" yaml:"photo_url,omitempty"`
}

type eventView struct {
	ID      string `json:"id" yaml:"id"`
	Date    string `json:"date" yaml:"date"`
	Time    string `json:"time" yaml:"time"`
	Title   string `json:"title" yaml:"title"`
	Pending bool   `json:"pending,omitempty" yaml:"pending,omitempty"`
}

type dayView struct {
	Date   string
	Events []eventView
}

type listView struct {
	Heading string
	Days    []dayView
}
