package notifications

import (
	"strings"
	"testing"

	"github.com/innovest/platform/internal/core/domain"
)

func TestRegistrationMailsCarryNoDedupKey(t *testing.T) {
	u := &domain.User{ID: "u1", FirstName: "Alice", LastName: "Chen", Email: "alice@example.com", Role: domain.RoleInvestor}

	alert := AdminRegistrationAlert("admin@innovest.com", u)
	if alert.To != "admin@innovest.com" || alert.DedupKey != "" {
		t.Errorf("alert = %+v", alert)
	}
	if !strings.Contains(alert.HTML, "Alice Chen") || !strings.Contains(alert.HTML, "investor") {
		t.Errorf("alert body incomplete: %s", alert.HTML)
	}

	ack := RegistrationReceived(u)
	if ack.To != u.Email || ack.DedupKey != "" {
		t.Errorf("ack = %+v", ack)
	}
	if !strings.Contains(ack.HTML, "pending admin approval") {
		t.Errorf("ack body incomplete: %s", ack.HTML)
	}
}

func TestDecisionMailsDedupPerUserAndVerdict(t *testing.T) {
	u := &domain.User{ID: "u1", FirstName: "Alice", Email: "alice@example.com"}

	approval := ApprovalNotice(u, "http://localhost:3000")
	if approval.DedupKey != "decision:u1:approved" {
		t.Errorf("approval dedup key = %q", approval.DedupKey)
	}
	if !strings.Contains(approval.HTML, `http://localhost:3000/login`) {
		t.Errorf("approval body missing login link: %s", approval.HTML)
	}

	rejection := RejectionNotice(u)
	if rejection.DedupKey != "decision:u1:rejected" {
		t.Errorf("rejection dedup key = %q", rejection.DedupKey)
	}
	if rejection.DedupKey == approval.DedupKey {
		t.Error("approval and rejection must dedup independently")
	}
}

func TestInvestorInterestNotice(t *testing.T) {
	innovator := &domain.User{ID: "n1", FirstName: "Ivan", Email: "ivan@example.com"}
	investor := &domain.User{
		ID: "i1", FirstName: "Vera", LastName: "Stone", Email: "vera@example.com",
		Investor: &domain.InvestorProfile{InvestmentFocus: "cleantech", InvestmentRange: "$100k-$1M"},
	}
	project := &domain.Project{ID: "p1", Title: "Solar Microgrids"}

	msg := InvestorInterestNotice(innovator, investor, project)
	if msg.To != innovator.Email {
		t.Errorf("to = %q, want the project owner", msg.To)
	}
	if msg.DedupKey != "interest:p1:i1" {
		t.Errorf("dedup key = %q", msg.DedupKey)
	}
	for _, want := range []string{"Solar Microgrids", "Vera Stone", "vera@example.com", "cleantech", "$100k-$1M"} {
		if !strings.Contains(msg.HTML, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestInvestorInterestNoticeWithoutProfile(t *testing.T) {
	// An investor record without the profile sub-document still renders.
	msg := InvestorInterestNotice(
		&domain.User{FirstName: "Ivan", Email: "ivan@example.com"},
		&domain.User{ID: "i1", FirstName: "Vera", Email: "vera@example.com"},
		&domain.Project{ID: "p1", Title: "Solar Microgrids"},
	)
	if !strings.Contains(msg.HTML, "Solar Microgrids") {
		t.Errorf("body incomplete: %s", msg.HTML)
	}
}
