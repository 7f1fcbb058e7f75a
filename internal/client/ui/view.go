package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"socialcli/internal/client/models"
	"socialcli/internal/client/profile"
	"socialcli/internal/client/search"
	"socialcli/internal/client/ui/components"
)

func (m model) View() string {
	if m.detail.Visible() {
		return m.viewDetail()
	}

	var b strings.Builder
	b.WriteString(components.TitleStyle.Render("Find people"))
	b.WriteString("\n\n")
	b.WriteString(" " + m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.viewBody())
	b.WriteString("\n")
	b.WriteString(components.MutedStyle.Render(" enter search · ↑/↓ select · tab open · ctrl+x dismiss · esc clear · ctrl+c quit"))
	return b.String()
}

func (m model) viewBody() string {
	switch m.search.Display() {
	case search.DisplayLoading:
		return " " + m.spinner.View() + " Searching…"

	case search.DisplayResults:
		return m.viewResults()

	case search.DisplayNoResults:
		return components.MutedStyle.Render(" No users found.")

	case search.DisplayRecent:
		return m.viewRecent()

	default:
		return components.MutedStyle.Render(" Type a name to search for people.")
	}
}

func (m model) viewResults() string {
	cards := make([]string, 0, len(m.search.Results()))
	for i, u := range m.search.Results() {
		cards = append(cards, m.renderCard(u, i == m.cursor))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (m model) viewRecent() string {
	var b strings.Builder
	b.WriteString(components.SectionStyle.Render(" Recent searches"))
	b.WriteString("\n")
	for i, u := range m.search.Recent().Entries() {
		b.WriteString(m.renderCard(u, i == m.cursor))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m model) renderCard(u models.User, selected bool) string {
	name := components.NameStyle.Render(u.Name)
	handle := components.HandleStyle.Render("@" + u.Username)
	counts := components.MutedStyle.Render(fmt.Sprintf("%s · %s · %s",
		components.CountLabel(len(u.Followers), "follower", "followers"),
		components.CountLabel(len(u.Following), "following", "following"),
		components.CountLabel(len(u.Posts), "post", "posts"),
	))

	body := name + " " + handle + "\n" + counts
	if bio := strings.TrimSpace(u.Bio); bio != "" {
		body += "\n" + components.Truncate(bio, 60)
	}

	style := components.CardStyle
	if selected {
		style = components.CardSelectedStyle
	}
	return style.Width(min(64, max(m.width-4, 30))).Render(body)
}

func (m model) viewDetail() string {
	var b strings.Builder
	b.WriteString(components.TitleStyle.Render("Profile"))
	b.WriteString("\n")
	b.WriteString(components.ModalStyle.Render(m.modal.View()))
	b.WriteString("\n")
	b.WriteString(components.MutedStyle.Render(" f follow/unfollow · ↑/↓ scroll · esc back"))
	return b.String()
}

// renderDetail refreshes the modal viewport from the current detail snapshot.
func (m *model) renderDetail() {
	u := m.detail.User()
	if u == nil {
		return
	}

	followLabel := components.FollowStyle.Render("[ Follow ]")
	if m.detail.IsFollowing() {
		followLabel = components.UnfollowStyle.Render("[ Unfollow ]")
	}

	var b strings.Builder
	b.WriteString(components.NameStyle.Render(u.Name))
	b.WriteString("  " + components.HandleStyle.Render("@"+u.Username))
	b.WriteString("\n\n")
	if bio := strings.TrimSpace(u.Bio); bio != "" {
		b.WriteString(bio)
		b.WriteString("\n\n")
	}
	b.WriteString(fmt.Sprintf("%s · %s · %s\n",
		components.CountLabel(len(u.Followers), "follower", "followers"),
		components.CountLabel(len(u.Following), "following", "following"),
		components.CountLabel(len(u.Posts), "post", "posts"),
	))
	if u.Email != "" {
		b.WriteString(components.MutedStyle.Render("Email: "+u.Email) + "\n")
	}
	if u.Phone != "" {
		b.WriteString(components.MutedStyle.Render("Phone: "+u.Phone) + "\n")
	}
	b.WriteString(components.MutedStyle.Render("Joined " + profile.FormatCreateTime(u.CreateTime)))
	b.WriteString("\n\n")
	b.WriteString(followLabel)

	m.modal.SetContent(b.String())
}
