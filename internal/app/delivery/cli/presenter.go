package cli

import (
	"ccsed-client/internal/app/models"
	"ccsed-client/internal/pkg/constvars"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title   lipgloss.Style
	faint   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	pending lipgloss.Style
	done    lipgloss.Style
	action  lipgloss.Style
	card    lipgloss.Style
	alert   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		faint:   lipgloss.NewStyle().Faint(true),
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		failure: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		pending: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		done:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		action:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1),
		alert: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("5")).
			Padding(0, 1),
	}
}

// Presenter renders controller output as terminal cards. It implements
// contracts.SessionView and contracts.ReservationView.
type Presenter struct {
	mu       sync.Mutex
	out      io.Writer
	location *time.Location
	styles   styles
}

func NewPresenter(out io.Writer, location *time.Location) *Presenter {
	if location == nil {
		location = time.Local
	}
	return &Presenter{
		out:      out,
		location: location,
		styles:   newStyles(),
	}
}

func (p *Presenter) println(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, text)
}

func (p *Presenter) RouteToHome(identityName string) {
	p.println(p.styles.success.Render(fmt.Sprintf(constvars.SessionActiveTemplate, identityName)))
}

func (p *Presenter) RouteToLogin() {
	p.println(p.styles.pending.Render("you are not logged in") + "\n" +
		p.styles.faint.Render("run: ccsed login --email <email> --password <password>"))
}

func (p *Presenter) ShowError(message string) {
	p.println(p.styles.failure.Render("error: ") + message)
}

func (p *Presenter) Success(message string) {
	p.println(p.styles.success.Render(message))
}

func (p *Presenter) ShowLoading(loading bool) {
	if loading {
		p.println(p.styles.faint.Render("loading reservations..."))
	}
}

func (p *Presenter) ShowAlert(title, message string) {
	p.println(p.styles.alert.Render(p.styles.title.Render(title) + "\n" + message))
}

func (p *Presenter) ShowReservations(reservations []models.Reservation) {
	if len(reservations) == 0 {
		p.println(p.styles.faint.Render(constvars.NoReservationsMessage))
		return
	}
	cards := make([]string, 0, len(reservations))
	for _, reservation := range reservations {
		cards = append(cards, p.reservationCard(reservation))
	}
	p.println(strings.Join(cards, "\n"))
}

func (p *Presenter) reservationCard(r models.Reservation) string {
	lines := []string{p.styles.title.Render(attentionLabel(r.AttentionType)) + "  " + p.styles.faint.Render(r.ID)}

	if !r.CreatedAt.IsZero() {
		lines = append(lines, "Requested: "+r.CreatedAt.In(p.location).Format("02/01/2006 15:04"))
	}
	if r.Resolved {
		lines = append(lines, "Status: "+p.styles.done.Render("attended"))
	} else {
		lines = append(lines, "Status: "+p.styles.pending.Render("waiting"))
	}
	if r.HasProvider() {
		lines = append(lines, "Doctor: "+r.ProviderName)
	}
	if r.Address != "" {
		lines = append(lines, "Address: "+r.Address)
	}

	if r.CanJoinMeeting() {
		lines = append(lines, p.styles.action.Render("Join meeting: "+r.MeetingLink))
	}
	if r.HasPrescription() {
		lines = append(lines, p.styles.action.Render(constvars.AlertPrescriptionTitle+": "+r.PrescriptionText))
	}
	if r.CanNotifyStaff() {
		lines = append(lines, p.styles.action.Render("Notify staff: ccsed notify-staff "+r.ID))
	}
	return p.styles.card.Render(strings.Join(lines, "\n"))
}

func attentionLabel(attentionType models.AttentionType) string {
	switch attentionType {
	case models.AttentionVirtual:
		return "Virtual attention"
	case models.AttentionInPerson:
		return "In-person attention"
	default:
		return "Attention (" + string(attentionType) + ")"
	}
}

func (p *Presenter) ShowDirectory(kind models.DirectoryKind, entries []models.DirectoryEntry) {
	if len(entries) == 0 {
		p.println(p.styles.faint.Render(fmt.Sprintf("no %s listed", kind)))
		return
	}
	cards := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines := []string{p.styles.title.Render(entry.Title)}
		lines = append(lines, entry.Details...)
		for _, link := range entry.Links {
			lines = append(lines, p.styles.action.Render(link))
		}
		cards = append(cards, p.styles.card.Render(strings.Join(lines, "\n")))
	}
	p.println(strings.Join(cards, "\n"))
}
