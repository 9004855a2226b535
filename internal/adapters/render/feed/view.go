package feed

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/skillconnect-cli/internal/application"
	"github.com/bnema/skillconnect-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const completionBarWidth = 20

type RenderOptions struct {
	Now    time.Time
	Viewer domain.UserID
}

func RenderPosts(posts []domain.Post, opts RenderOptions) (string, error) {
	return run(func(s styles) string {
		return renderPosts(posts, opts, s)
	})
}

func RenderProgress(updates []domain.ProgressUpdate, opts RenderOptions) (string, error) {
	return run(func(s styles) string {
		return renderProgress(updates, opts, s)
	})
}

func RenderComments(comments []domain.Comment, opts RenderOptions) (string, error) {
	return run(func(s styles) string {
		return renderComments(comments, opts, s)
	})
}

func RenderNotifications(inbox application.Inbox, opts RenderOptions) (string, error) {
	return run(func(s styles) string {
		return renderNotifications(inbox, opts, s)
	})
}

func RenderProfile(profile application.Profile, opts RenderOptions) (string, error) {
	return run(func(s styles) string {
		return renderProfile(profile, opts, s)
	})
}

func renderPosts(posts []domain.Post, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Posts"),
		s.header.Render(fmt.Sprintf("posts: %d", len(posts))),
	}

	if len(posts) == 0 {
		lines = append(lines, s.empty.Render("No posts yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, post := range posts {
		lines = append(lines, s.section.Render(renderPost(post, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderPost(post domain.Post, opts RenderOptions, s styles) string {
	heading := s.author.Render(authorLabel(post.User, post.OwnerID()))
	if opts.Viewer != "" && post.OwnerID() == opts.Viewer {
		heading += " " + s.badge.Render("(you)")
	}

	parts := []string{heading}
	if caption := strings.TrimSpace(post.Caption); caption != "" {
		parts = append(parts, s.detail.Render(caption))
	}
	for _, media := range post.MediaTypes {
		parts = append(parts, s.media.Render(fmt.Sprintf("%s: %s", mediaLabel(media.Type), media.URL)))
	}
	parts = append(parts, s.meta.Render(metaLine(string(post.ID), post.CreatedAt, opts.Now)))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderProgress(updates []domain.ProgressUpdate, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Learning Progress"),
		s.header.Render(fmt.Sprintf("updates: %d", len(updates))),
	}

	if len(updates) == 0 {
		lines = append(lines, s.empty.Render("No progress updates to show."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, update := range updates {
		lines = append(lines, s.section.Render(renderProgressUpdate(update, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderProgressUpdate(update domain.ProgressUpdate, opts RenderOptions, s styles) string {
	heading := s.author.Render(templateLabel(update.TemplateType))
	if !update.Public {
		heading += " " + s.private.Render("[private]")
	}

	parts := []string{heading}
	if content := strings.TrimSpace(update.Content); content != "" {
		parts = append(parts, s.detail.Render(content))
	}

	percent := clampPercent(update.Completion * 100)
	parts = append(parts, lipgloss.JoinHorizontal(
		lipgloss.Top,
		renderCompletionBar(percent, completionBarWidth, s),
		" ",
		s.detail.Render(fmt.Sprintf("%3.0f%%", percent)),
	))
	if update.EstimatedTime > 0 {
		parts = append(parts, s.meta.Render(fmt.Sprintf("estimated: %s", formatHours(update.EstimatedTime))))
	}
	parts = append(parts, s.meta.Render(metaLine(string(update.ID), update.CreatedAt, opts.Now)))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderComments(comments []domain.Comment, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Comments"),
		s.header.Render(fmt.Sprintf("comments: %d", len(comments))),
	}

	if len(comments) == 0 {
		lines = append(lines, s.empty.Render("No comments yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, comment := range comments {
		heading := s.author.Render(authorLabel(comment.User, comment.OwnerID()))
		if opts.Viewer != "" && comment.OwnerID() == opts.Viewer {
			heading += " " + s.badge.Render("(you)")
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(
			lipgloss.Left,
			heading,
			s.detail.Render(strings.TrimSpace(comment.Content)),
			s.meta.Render(metaLine(string(comment.ID), comment.CreatedAt, opts.Now)),
		)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderNotifications(inbox application.Inbox, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Notifications"),
		s.header.Render(fmt.Sprintf("notifications: %d", inbox.Count)),
	}

	if len(inbox.Notifications) == 0 {
		lines = append(lines, s.empty.Render("You're all caught up."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, notification := range inbox.Notifications {
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(
			lipgloss.Left,
			s.author.Render(notification.Title),
			s.detail.Render(notification.Message),
			s.meta.Render(metaLine(string(notification.ID), notification.CreatedAt, opts.Now)),
		)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderProfile(profile application.Profile, opts RenderOptions, s styles) string {
	user := profile.User
	heading := s.title.Render(user.DisplayName())
	if user.Username != "" && user.Username != user.DisplayName() {
		heading += " " + s.header.Render("@"+user.Username)
	}
	if profile.IsSelf {
		heading += " " + s.badge.Render("(you)")
	}

	lines := []string{
		heading,
		s.header.Render(fmt.Sprintf("followers: %d  following: %d  posts: %d", profile.Counts.Followers, profile.Counts.Following, len(profile.Posts))),
	}
	if profile.Following != nil {
		relation := "not following"
		if *profile.Following {
			relation = "following"
		}
		lines = append(lines, s.badge.Render(relation))
	}
	if bio := strings.TrimSpace(user.Bio); bio != "" {
		lines = append(lines, s.detail.Render(bio))
	}

	for _, field := range []struct {
		label string
		value string
	}{
		{"email", user.Email},
		{"contact", user.ContactNumber},
		{"address", user.Address},
		{"avatar", user.ProfileImageURL},
		{"cover", profile.CoverImageURL},
	} {
		if field.value == "" {
			continue
		}
		lines = append(lines, s.meta.Render(fmt.Sprintf("%s: %s", field.label, field.value)))
	}

	lines = append(lines, s.section.Render(renderPosts(profile.Posts, opts, s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func authorLabel(user domain.User, id domain.UserID) string {
	if name := user.DisplayName(); name != "" {
		return name
	}
	if id != "" {
		return string(id)
	}
	return "unknown"
}

func mediaLabel(kind string) string {
	if kind == "" {
		return "media"
	}
	return kind
}

func templateLabel(template string) string {
	if template == "" {
		return "Progress"
	}
	return template
}

func metaLine(id string, createdAt, now time.Time) string {
	if createdAt.IsZero() {
		return "id: " + id
	}
	return fmt.Sprintf("id: %s  %s", id, formatAge(createdAt, now))
}

func formatAge(at, now time.Time) string {
	if now.IsZero() {
		return at.Format("02 Jan 2006 15:04")
	}

	elapsed := now.Sub(at)
	switch {
	case elapsed < time.Minute:
		return "just now"
	case elapsed < time.Hour:
		return fmt.Sprintf("%dm ago", int(elapsed.Minutes()))
	case elapsed < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(elapsed.Hours()))
	case elapsed < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(elapsed.Hours()/24))
	default:
		return at.Format("02 Jan 2006")
	}
}

func formatHours(hours float64) string {
	if hours == math.Trunc(hours) {
		return fmt.Sprintf("%.0fh", hours)
	}
	return fmt.Sprintf("%.1fh", hours)
}

func renderCompletionBar(percent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampPercent(percent) / 100))
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
