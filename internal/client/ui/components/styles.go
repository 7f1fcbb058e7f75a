package components

import "github.com/charmbracelet/lipgloss"

var (
	TitleStyle        = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("86")).Bold(true)
	SectionStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)
	NameStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	HandleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	MutedStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	CardStyle         = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	CardSelectedStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("86")).Padding(0, 1)
	ModalStyle        = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("86")).Padding(1, 2)
	FollowStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	UnfollowStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
)
