// services/mail_service.go
package services

import (
	"bytes"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"os"
	"strconv"
	"time"
)

type IMailService interface {
	SendShareLink(to, itineraryTitle, link string) error
}

// SMTPConfig holds SMTP + branding config.
type SMTPConfig struct {
	Host     string // e.g. "smtp.gmail.com"
	Port     int    // e.g. 587 (STARTTLS)
	Username string
	Password string
	From     string // envelope from, e.g. "no-reply@tripline.app"
	FromName string
	AppName  string
}

func SMTPConfigFromEnv() SMTPConfig {
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if port == 0 {
		port = 587
	}
	return SMTPConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
		FromName: "Tripline",
		AppName:  "Tripline",
	}
}

type smtpMailService struct {
	cfg     SMTPConfig
	bodyTpl *template.Template
}

const shareMailTemplate = `<html><body style="font-family:sans-serif">
<h2>{{.Title}} was shared with you</h2>
<p>Open the itinerary on the map:</p>
<p><a href="{{.Link}}">{{.Link}}</a></p>
<p style="color:#888;font-size:12px">{{.AppName}} &middot; {{.Year}}</p>
</body></html>`

func NewSMTPMailService(cfg SMTPConfig) IMailService {
	return &smtpMailService{
		cfg:     cfg,
		bodyTpl: template.Must(template.New("share").Parse(shareMailTemplate)),
	}
}

func (s *smtpMailService) SendShareLink(to, itineraryTitle, link string) error {
	var body bytes.Buffer
	err := s.bodyTpl.Execute(&body, map[string]interface{}{
		"Title":   itineraryTitle,
		"Link":    link,
		"AppName": s.cfg.AppName,
		"Year":    time.Now().Year(),
	})
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("%s shared an itinerary with you", s.cfg.AppName)
	msg := fmt.Sprintf("From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		s.cfg.FromName, s.cfg.From, to, subject, body.String())

	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	return smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg))
}
