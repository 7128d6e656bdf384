package commands

import (
	"fmt"
	"io"
	"os"

	"wahactl/internal/render"
	"wahactl/internal/waha"
)

// printListOr prints a per-item summary when the response is a list of
// objects, and falls back to the generic JSON dump for any other shape.
func printListOr(res waha.Result, summary func(io.Writer, []waha.Object)) {
	if items, ok := res.List(); ok {
		summary(os.Stdout, items)
		return
	}
	render.JSON(os.Stdout, res.Any())
}

func printGroups(w io.Writer, groups []waha.Object) {
	for _, g := range groups {
		fmt.Fprintf(w, "  %s  %s (%s members)\n",
			g.TextOr("?", "id"), g.Text("subject", "name"), g.TextOr("?", "size"))
	}
	fmt.Fprintf(w, "\n(%d groups)\n", len(groups))
}

func printParticipants(w io.Writer, participants []waha.Object) {
	for _, p := range participants {
		fmt.Fprintf(w, "  %s  %s\n", p.TextOr("?", "id"), p.Text("role", "isAdmin"))
	}
	fmt.Fprintf(w, "\n(%d participants)\n", len(participants))
}

func printContacts(w io.Writer, contacts []waha.Object) {
	for _, c := range contacts {
		fmt.Fprintf(w, "  %s  %s\n", c.TextOr("?", "id"), c.Text("name", "pushname"))
	}
	fmt.Fprintf(w, "\n(%d contacts)\n", len(contacts))
}

// printExistence renders the check-exists verdict. The gateway signals a
// registered number through numberExists or by echoing a chatId.
func printExistence(w io.Writer, phone string, data waha.Object) {
	status := "NOT found"
	if data.Truthy("numberExists", "chatId") {
		status = "exists"
	}
	fmt.Fprintf(w, "\n  Number %s %s on WhatsApp\n", phone, status)
}

func printChats(w io.Writer, chats []waha.Object) {
	for _, c := range chats {
		fmt.Fprintf(w, "  %s  %s\n", c.TextOr("?", "id"), c.Text("name"))
	}
	fmt.Fprintf(w, "\n(%d chats)\n", len(chats))
}

func printChatsOverview(w io.Writer, chats []waha.Object) {
	for _, c := range chats {
		fmt.Fprintf(w, "  %s  %s\n", c.TextOr("?", "id"), c.Text("name"))
		if body := truncate(c.Child("lastMessage").Text("body"), 80); body != "" {
			fmt.Fprintf(w, "    -> %s\n", body)
		}
	}
	fmt.Fprintf(w, "\n(%d chats)\n", len(chats))
}

// printMessages walks the page backwards: the gateway sorts newest first, the
// terminal reads better oldest first.
func printMessages(w io.Writer, messages []waha.Object) {
	for i := len(messages) - 1; i >= 0; i-- {
		m := messages[i]
		sender := m.TextOr("?", "from")
		if m.Truthy("fromMe") {
			sender = "me"
		}
		media := ""
		if m.Truthy("hasMedia") {
			media = " [media]"
		}
		fmt.Fprintf(w, "  [%s] %s: %s%s\n", m.Text("timestamp"), sender, m.Text("body"), media)
		fmt.Fprintf(w, "           id: %s\n", m.Text("id"))
	}
	fmt.Fprintf(w, "\n(%d messages)\n", len(messages))
}

func printSessions(w io.Writer, sessions []waha.Object) {
	for _, s := range sessions {
		fmt.Fprintf(w, "  %s  [%s]\n", s.TextOr("?", "name"), s.TextOr("?", "status"))
	}
	fmt.Fprintf(w, "\n(%d sessions)\n", len(sessions))
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
