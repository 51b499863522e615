package email

import (
	"bytes"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"github.com/Toodlepoodle/property-listings-martin/internal/model"
)

// Service sends templated HTML mail over SMTP.
type Service struct {
	host      string
	port      int
	username  string
	password  string
	from      string
	templates *template.Template
}

// Template data structures
type OTPCodeData struct {
	Code          string
	ExpiryMinutes int
}

type MatchAlertData struct {
	PropertyTitle    string
	PropertyType     string
	PropertyPrice    string
	PropertyArea     string
	PropertyBHK      string
	PropertyLocation string
	PropertyContact  string

	ClientName    string
	ClientEmail   string
	ClientContact string

	ReqType     string
	ReqPriceMin string
	ReqPriceMax string
	ReqAreaMin  string
	ReqAreaMax  string
	ReqLocation string
	ReqBHK      string
}

func NewService(host string, port int, username, password, from string) (*Service, error) {
	if host == "" {
		return nil, fmt.Errorf("SMTP host is required")
	}

	templates, err := loadTemplates()
	if err != nil {
		return nil, fmt.Errorf("error loading email templates: %v", err)
	}

	return &Service{
		host:      host,
		port:      port,
		username:  username,
		password:  password,
		from:      from,
		templates: templates,
	}, nil
}

func (s *Service) sendTemplateEmail(to, subject, templateName string, data interface{}) error {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, templateName, data); err != nil {
		return fmt.Errorf("template execution error: %v", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	return d.DialAndSend(m)
}

// SendOTPCode delivers a login code.
func (s *Service) SendOTPCode(to, code string, expiryMinutes int) error {
	data := OTPCodeData{Code: code, ExpiryMinutes: expiryMinutes}
	return s.sendTemplateEmail(to, "Your Login Code", "otp_code.html", data)
}

// SendMatchAlert tells the admin that a property and a client requirement
// line up.
func (s *Service) SendMatchAlert(to string, p model.Property, r model.Requirement) error {
	data := MatchAlertData{
		PropertyTitle:    p.Title,
		PropertyType:     string(p.Type),
		PropertyPrice:    p.Price,
		PropertyArea:     p.Area,
		PropertyBHK:      p.BHK,
		PropertyLocation: p.Location,
		PropertyContact:  p.Contact,
		ClientName:       r.Name,
		ClientEmail:      r.Email,
		ClientContact:    r.Contact,
		ReqType:          string(r.Type),
		ReqPriceMin:      r.MinPrice,
		ReqPriceMax:      r.MaxPrice,
		ReqAreaMin:       r.MinArea,
		ReqAreaMax:       r.MaxArea,
		ReqLocation:      r.Location,
		ReqBHK:           r.BHK,
	}
	subject := fmt.Sprintf("Requirement Match: %s", p.Title)
	return s.sendTemplateEmail(to, subject, "match_alert.html", data)
}
