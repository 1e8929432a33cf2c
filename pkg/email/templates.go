package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// Template represents a predefined email template type.
type Template string

const (
	// TemplateAgencyInvitation is the agency invitation template.
	TemplateAgencyInvitation Template = "agency_invitation"
	// TemplateProjectInvitation is the project invitation template.
	TemplateProjectInvitation Template = "project_invitation"
	// TemplateWelcome is the welcome email template.
	TemplateWelcome Template = "welcome"
)

// InvitationData holds data for the agency and project invitation templates.
type InvitationData struct {
	InviterName   string
	ResourceName  string
	Role          string
	InvitationURL string
	ExpiresIn     string
	AppName       string
}

// WelcomeData holds data for the welcome email template.
type WelcomeData struct {
	UserName string
	Email    string
	LoginURL string
	AppName  string
}

// TemplateEngine handles email template rendering.
type TemplateEngine struct {
	templates map[Template]*templateDef
}

type templateDef struct {
	subjectTmpl *template.Template
	bodyTmpl    *template.Template
}

// NewTemplateEngine creates a new template engine with all predefined templates.
func NewTemplateEngine() *TemplateEngine {
	engine := &TemplateEngine{
		templates: make(map[Template]*templateDef),
	}
	engine.registerTemplates()
	return engine
}

// Render renders a template with the given data.
func (e *TemplateEngine) Render(tmpl Template, data any) (subject string, body string, err error) {
	def, ok := e.templates[tmpl]
	if !ok {
		return "", "", fmt.Errorf("template %s not found", tmpl)
	}

	var subjectBuf bytes.Buffer
	if err := def.subjectTmpl.Execute(&subjectBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute subject template: %w", err)
	}

	var bodyBuf bytes.Buffer
	if err := def.bodyTmpl.Execute(&bodyBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute body template: %w", err)
	}

	return subjectBuf.String(), bodyBuf.String(), nil
}

func (e *TemplateEngine) registerTemplates() {
	e.templates[TemplateAgencyInvitation] = &templateDef{
		subjectTmpl: template.Must(template.New("agency_invitation_subject").Parse("You've been invited to join {{.ResourceName}}")),
		bodyTmpl:    template.Must(template.New("agency_invitation").Parse(invitationTemplate)),
	}

	e.templates[TemplateProjectInvitation] = &templateDef{
		subjectTmpl: template.Must(template.New("project_invitation_subject").Parse("You've been invited to collaborate on {{.ResourceName}}")),
		bodyTmpl:    template.Must(template.New("project_invitation").Parse(invitationTemplate)),
	}

	e.templates[TemplateWelcome] = &templateDef{
		subjectTmpl: template.Must(template.New("welcome_subject").Parse("Welcome to {{.AppName}}")),
		bodyTmpl:    template.Must(template.New("welcome").Parse(welcomeTemplate)),
	}
}

// Email Templates (HTML)

const invitationTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>You're Invited</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .container { background: #ffffff; border-radius: 8px; padding: 40px; border: 1px solid #e0e0e0; }
        .header { text-align: center; margin-bottom: 30px; }
        .logo { font-size: 24px; font-weight: bold; color: #2563eb; }
        .button { display: inline-block; background: #2563eb; color: #ffffff; padding: 14px 28px; text-decoration: none; border-radius: 6px; font-weight: 600; margin: 20px 0; }
        .button:hover { background: #1d4ed8; }
        .footer { margin-top: 30px; padding-top: 20px; border-top: 1px solid #e0e0e0; font-size: 12px; color: #666; text-align: center; }
        .warning { background: #fef3c7; border: 1px solid #f59e0b; border-radius: 4px; padding: 12px; margin: 20px 0; font-size: 14px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <div class="logo">{{.AppName}}</div>
        </div>

        <h2>You've been invited</h2>

        <p>Hi,</p>

        <p>{{if .InviterName}}<strong>{{.InviterName}}</strong>{{else}}Someone{{end}} has invited you to join <strong>{{.ResourceName}}</strong> as <strong>{{.Role}}</strong> on {{.AppName}}.</p>

        <div style="text-align: center;">
            <a href="{{.InvitationURL}}" class="button">Accept Invitation</a>
        </div>

        <div class="warning">
            This invitation will expire in <strong>{{.ExpiresIn}}</strong>.
        </div>

        <p>If you weren't expecting this invitation, you can safely ignore this email.</p>

        <p>If the button doesn't work, copy and paste this link into your browser:</p>
        <p style="word-break: break-all; font-size: 12px; color: #666;">{{.InvitationURL}}</p>

        <div class="footer">
            <p>&copy; {{.AppName}}. All rights reserved.</p>
        </div>
    </div>
</body>
</html>`

const welcomeTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Welcome</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .container { background: #ffffff; border-radius: 8px; padding: 40px; border: 1px solid #e0e0e0; }
        .header { text-align: center; margin-bottom: 30px; }
        .logo { font-size: 24px; font-weight: bold; color: #2563eb; }
        .button { display: inline-block; background: #2563eb; color: #ffffff; padding: 14px 28px; text-decoration: none; border-radius: 6px; font-weight: 600; margin: 20px 0; }
        .footer { margin-top: 30px; padding-top: 20px; border-top: 1px solid #e0e0e0; font-size: 12px; color: #666; text-align: center; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <div class="logo">{{.AppName}}</div>
        </div>

        <h2>Welcome aboard{{if .UserName}}, {{.UserName}}{{end}}!</h2>

        <p>Your {{.AppName}} account is ready. Sign in to start managing your clients, projects, and campaign plans.</p>

        <div style="text-align: center;">
            <a href="{{.LoginURL}}" class="button">Sign In</a>
        </div>

        <div class="footer">
            <p>This email was sent to {{.Email}}</p>
            <p>&copy; {{.AppName}}. All rights reserved.</p>
        </div>
    </div>
</body>
</html>`
