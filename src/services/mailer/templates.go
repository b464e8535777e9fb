package mailer

import (
	"bytes"
	"html/template"
)

type MilestoneEmailData struct {
	UserName    string
	ProgramName string
	Milestone   int
	Completed   int
	Total       int
}

type CertificateEmailData struct {
	UserName    string
	ProgramName string
	Serial      string
}

type ReminderEmailData struct {
	UserName    string
	ProgramName string
	Date        string
	StartTime   string
	EndTime     string
	Slot        string
}

var milestoneTmpl = template.Must(template.New("milestone").Parse(`
<p>Hi {{.UserName}},</p>
<p>Great going! You have completed <b>{{.Milestone}}%</b> of <b>{{.ProgramName}}</b>
({{.Completed}} of {{.Total}} sessions).</p>
<p>Keep it up - see you at the next session.</p>
<p>CrickZone Coaching</p>
`))

var certificateTmpl = template.Must(template.New("certificate").Parse(`
<p>Hi {{.UserName}},</p>
<p>Congratulations! You are now eligible for your <b>{{.ProgramName}}</b>
completion certificate.</p>
<p>Certificate reference: <b>{{.Serial}}</b></p>
<p>Collect it from your coach at the academy office.</p>
<p>CrickZone Coaching</p>
`))

var reminderTmpl = template.Must(template.New("reminder").Parse(`
<p>Hi {{.UserName}},</p>
<p>Reminder: your <b>{{.ProgramName}}</b> session is tomorrow.</p>
<p>{{.Date}}, {{.StartTime}}-{{.EndTime}}{{if .Slot}} (slot {{.Slot}}){{end}}</p>
<p>CrickZone Coaching</p>
`))

func RenderMilestoneHTML(data MilestoneEmailData) (string, error) {
	var buf bytes.Buffer
	if err := milestoneTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func RenderCertificateHTML(data CertificateEmailData) (string, error) {
	var buf bytes.Buffer
	if err := certificateTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func RenderReminderHTML(data ReminderEmailData) (string, error) {
	var buf bytes.Buffer
	if err := reminderTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
