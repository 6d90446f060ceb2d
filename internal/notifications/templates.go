package notifications

import (
	"fmt"

	"github.com/innovest/platform/internal/core/domain"
)

// Template builders for every platform e-mail. The HTML bodies are the
// product copy; handlers and services never assemble mail content themselves.

// AdminRegistrationAlert tells the administrative address about a new registrant.
func AdminRegistrationAlert(adminEmail string, u *domain.User) Message {
	return Message{
		To:      adminEmail,
		Subject: "New Innovest Registration",
		HTML: fmt.Sprintf(`<h2>New User Registration</h2>
<p>A new user has registered on Innovest and is pending approval:</p>
<ul>
  <li><strong>Name:</strong> %s</li>
  <li><strong>Email:</strong> %s</li>
  <li><strong>Role:</strong> %s</li>
</ul>
<p>Please review and approve or reject this registration.</p>`,
			u.FullName(), u.Email, u.Role),
	}
}

// RegistrationReceived acknowledges the registrant while review is pending.
func RegistrationReceived(u *domain.User) Message {
	return Message{
		To:      u.Email,
		Subject: "Innovest Registration Received",
		HTML: fmt.Sprintf(`<h2>Thank You for Registering with Innovest!</h2>
<p>Hello %s,</p>
<p>Your registration has been received and is now pending admin approval. You'll receive another email once your account has been reviewed.</p>
<p>Thank you for your patience.</p>`,
			u.FirstName),
	}
}

// ApprovalNotice tells the user their account was approved, with a login link
// back into the frontend.
func ApprovalNotice(u *domain.User, frontendURL string) Message {
	return Message{
		To:       u.Email,
		Subject:  "Innovest Registration Approved",
		DedupKey: "decision:" + u.ID + ":" + string(domain.StatusApproved),
		HTML: fmt.Sprintf(`<h2>Your Innovest Registration is Approved!</h2>
<p>Hello %s,</p>
<p>Great news! Your Innovest account has been approved by our admin team.</p>
<p>You can now log in and access all features on the platform.</p>
<p><a href="%s/login">Click here to login</a></p>`,
			u.FirstName, frontendURL),
	}
}

// RejectionNotice tells the user their account was not approved.
func RejectionNotice(u *domain.User) Message {
	return Message{
		To:       u.Email,
		Subject:  "Innovest Registration Update",
		DedupKey: "decision:" + u.ID + ":" + string(domain.StatusRejected),
		HTML: fmt.Sprintf(`<h2>Innovest Registration Update</h2>
<p>Hello %s,</p>
<p>We've reviewed your registration for Innovest, and unfortunately, we're unable to approve your account at this time.</p>
<p>If you have any questions or would like to provide additional information, please contact our support team.</p>`,
			u.FirstName),
	}
}

// InvestorInterestNotice tells a project's owner that an investor wants to talk.
func InvestorInterestNotice(innovator, investor *domain.User, project *domain.Project) Message {
	var focus, investmentRange string
	if investor.Investor != nil {
		focus = investor.Investor.InvestmentFocus
		investmentRange = investor.Investor.InvestmentRange
	}
	return Message{
		To:       innovator.Email,
		Subject:  "New Investor Interest in Your Project",
		DedupKey: "interest:" + project.ID + ":" + investor.ID,
		HTML: fmt.Sprintf(`<h2>New Interest in Your Project</h2>
<p>Hello %s,</p>
<p>An investor has expressed interest in your project "%s".</p>
<p><strong>Investor Details:</strong></p>
<ul>
  <li>Name: %s</li>
  <li>Email: %s</li>
  <li>Investment Focus: %s</li>
  <li>Investment Range: %s</li>
</ul>
<p>You can contact them directly to discuss potential collaboration.</p>`,
			innovator.FirstName, project.Title, investor.FullName(), investor.Email, focus, investmentRange),
	}
}
