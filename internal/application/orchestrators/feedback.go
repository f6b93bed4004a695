package orchestrators

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"time"

	"leaguedesk/internal/adapters/email"
	"leaguedesk/internal/domain/feedback"
)

// FeedbackDeps holds dependencies for the feedback orchestrator.
type FeedbackDeps struct {
	Sender     email.Sender
	OperatorTo string // destination address for reports
	Now        func() time.Time
	GenerateID func() string
}

// FeedbackInput carries the "report a problem" form fields.
type FeedbackInput struct {
	Summary     string
	Description string
	Route       string
	UserAgent   string
	Email       string
}

// ExecuteSubmitFeedback validates a problem report and mails it to the
// operator. Reports never travel to the league API.
// PRE: deps.Sender is non-nil (use the noop sender when email is unconfigured)
// POST: Returns the stored report on success; nothing is sent on validation failure
func ExecuteSubmitFeedback(ctx context.Context, input FeedbackInput, deps FeedbackDeps) (feedback.Report, error) {
	report := feedback.Report{
		ID:          deps.GenerateID(),
		Summary:     input.Summary,
		Description: input.Description,
		Route:       input.Route,
		UserAgent:   input.UserAgent,
		Email:       input.Email,
		SubmittedAt: deps.Now(),
	}
	if err := report.Validate(); err != nil {
		return feedback.Report{}, err
	}

	req := email.SendRequest{
		To:      []string{deps.OperatorTo},
		Subject: fmt.Sprintf("[leaguedesk] %s", report.Summary),
		HTML:    feedbackEmailHTML(report),
	}
	if report.Email != "" {
		req.ReplyTo = report.Email
	}

	result, err := deps.Sender.Send(ctx, req)
	if err != nil {
		slog.Error("feedback_send_failed", "report_id", report.ID, "error", err)
		return feedback.Report{}, fmt.Errorf("sending feedback report: %w", err)
	}

	slog.Info("feedback_submitted", "report_id", report.ID, "message_id", result.MessageID, "route", report.Route)
	return report, nil
}

func feedbackEmailHTML(r feedback.Report) string {
	return fmt.Sprintf(
		`<h2>%s</h2>
<p>%s</p>
<hr>
<p><strong>Report ID:</strong> %s<br>
<strong>Page:</strong> %s<br>
<strong>User agent:</strong> %s<br>
<strong>Submitted:</strong> %s</p>`,
		html.EscapeString(r.Summary),
		html.EscapeString(r.Description),
		html.EscapeString(r.ID),
		html.EscapeString(r.Route),
		html.EscapeString(r.UserAgent),
		r.SubmittedAt.UTC().Format(time.RFC3339),
	)
}
