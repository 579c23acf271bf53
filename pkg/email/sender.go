// Package email sends the daily digest over SMTP with the carousel slides
// embedded inline.
package email

import (
	"context"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/wneessen/go-mail"

	"github.com/startupwire/startupwire/pkg/config"
	"github.com/startupwire/startupwire/pkg/domain"
)

// Sender builds and sends digest emails
type Sender struct {
	cfg config.EmailConfig
	now func() time.Time
}

// NewSender creates a sender for the given SMTP settings
func NewSender(cfg config.EmailConfig) *Sender {
	return &Sender{cfg: cfg, now: time.Now}
}

// SendDigest sends the ranked stories with the slide images embedded inline
func (s *Sender) SendDigest(ctx context.Context, articles []domain.Article, slides []string) error {
	msg, err := s.digestMessage(articles, slides)
	if err != nil {
		return fmt.Errorf("build digest message: %w", err)
	}
	if err := s.send(ctx, msg); err != nil {
		return fmt.Errorf("send digest: %w", err)
	}
	lgr.Printf("[INFO] digest email sent to %s, %d stories, %d slides",
		strings.Join(s.cfg.To, ", "), len(articles), len(slides))
	return nil
}

// SendErrorNotification reports a failed digest run to the recipients
func (s *Sender) SendErrorNotification(ctx context.Context, runErr error) error {
	msg, err := s.errorMessage(runErr)
	if err != nil {
		return fmt.Errorf("build error message: %w", err)
	}
	if err := s.send(ctx, msg); err != nil {
		return fmt.Errorf("send error notification: %w", err)
	}
	return nil
}

func (s *Sender) digestMessage(articles []domain.Article, slides []string) (*mail.Msg, error) {
	msg, err := s.newMessage()
	if err != nil {
		return nil, err
	}

	date := s.now().Format("January 2, 2006")
	msg.Subject(fmt.Sprintf("Your Daily Indian Startup Brief - %s", date))

	body, err := renderDigestBody(date, articles, slides)
	if err != nil {
		return nil, err
	}
	msg.SetBodyString(mail.TypeTextHTML, body)

	for _, slide := range slides {
		msg.EmbedFile(slide)
	}
	return msg, nil
}

func (s *Sender) errorMessage(runErr error) (*mail.Msg, error) {
	msg, err := s.newMessage()
	if err != nil {
		return nil, err
	}
	msg.Subject(fmt.Sprintf("Startup digest failed - %s", s.now().Format("January 2, 2006")))
	msg.SetBodyString(mail.TypeTextPlain,
		fmt.Sprintf("The daily digest run failed:\n\n%v\n\nCheck the logs for details.\n", runErr))
	return msg, nil
}

func (s *Sender) newMessage() (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(s.cfg.From); err != nil {
		return nil, fmt.Errorf("set from address: %w", err)
	}
	if err := msg.To(s.cfg.To...); err != nil {
		return nil, fmt.Errorf("set recipients: %w", err)
	}
	return msg, nil
}

func (s *Sender) send(ctx context.Context, msg *mail.Msg) error {
	client, err := mail.NewClient(s.cfg.Host,
		mail.WithPort(s.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.cfg.Username),
		mail.WithPassword(s.cfg.Password),
	)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}
	return client.DialAndSendWithContext(ctx, msg)
}

// digest body template, palette matches the carousel slides
var digestTmpl = template.Must(template.New("digest").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>Indian Startup News Digest</title>
<style>
body { font-family: 'Segoe UI', Tahoma, sans-serif; line-height: 1.6; margin: 0; padding: 20px; background-color: #f8fafc; }
.container { max-width: 800px; margin: 0 auto; background-color: white; border-radius: 12px; overflow: hidden; }
.header { background: linear-gradient(135deg, #1e3a8a 0%, #3b82f6 100%); color: white; padding: 30px; text-align: center; }
.header h1 { margin: 0; font-size: 28px; }
.content { padding: 30px; }
.section h2 { color: #1e3a8a; font-size: 22px; border-bottom: 2px solid #f59e0b; padding-bottom: 10px; }
.slide img { max-width: 100%; height: auto; border-radius: 6px; margin-bottom: 15px; }
.story { background-color: #f8fafc; margin-bottom: 20px; padding: 20px; border-radius: 10px; border-left: 4px solid #f59e0b; }
.story-title { font-size: 18px; font-weight: bold; margin-bottom: 10px; }
.story-title a { color: #1e3a8a; text-decoration: none; }
.story-summary { color: #6b7280; font-size: 14px; }
.story-meta { font-size: 12px; color: #9ca3af; font-style: italic; }
.rank { display: inline-block; background-color: #f59e0b; color: white; padding: 4px 8px; border-radius: 15px; font-size: 12px; font-weight: bold; margin-right: 10px; }
.footer { background-color: #1f2937; color: white; padding: 20px; text-align: center; font-size: 12px; }
</style>
</head>
<body>
<div class="container">
<div class="header">
<h1>Indian Startup News Digest</h1>
<p>Top {{len .Stories}} Stories &bull; {{.Date}}</p>
</div>
<div class="content">
{{if .Slides}}<div class="section">
<h2>LinkedIn Carousel</h2>
{{range .Slides}}<div class="slide"><img src="cid:{{.}}" alt="carousel slide"></div>
{{end}}</div>
{{end}}<div class="section">
<h2>Today's Stories</h2>
{{range .Stories}}<div class="story">
<div class="story-title"><span class="rank">{{.Rank}}</span><a href="{{.URL}}">{{.Title}}</a></div>
<div class="story-summary">{{.Summary}}</div>
<div class="story-meta">{{.Source}}{{if .Categories}} &bull; {{.Categories}}{{end}}</div>
</div>
{{end}}</div>
</div>
<div class="footer">Generated by startupwire</div>
</div>
</body>
</html>
`))

type storyView struct {
	Rank       int
	Title      string
	URL        string
	Summary    string
	Source     string
	Categories string
}

func renderDigestBody(date string, articles []domain.Article, slides []string) (string, error) {
	stories := make([]storyView, 0, len(articles))
	for i, a := range articles {
		stories = append(stories, storyView{
			Rank:       i + 1,
			Title:      a.Title,
			URL:        a.URL,
			Summary:    a.Summary,
			Source:     a.Source,
			Categories: strings.Join(a.Categories, ", "),
		})
	}

	// slides are referenced by content id, go-mail uses the base filename
	cids := make([]string, 0, len(slides))
	for _, slide := range slides {
		cids = append(cids, filepath.Base(slide))
	}

	var buf strings.Builder
	data := struct {
		Date    string
		Stories []storyView
		Slides  []string
	}{Date: date, Stories: stories, Slides: cids}

	if err := digestTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render digest template: %w", err)
	}
	return buf.String(), nil
}
