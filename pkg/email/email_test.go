package email

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderWelcomeHTMLEscapes(t *testing.T) {
	html, err := RenderWelcomeHTML(Welcome{
		Heading:   "Olá, <script>alert(1)</script>!",
		Body:      "Compartilhe seu link",
		InviteURL: "http://localhost:3333/invites/abc",
	})
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, `href="http://localhost:3333/invites/abc"`)
}

func TestNopSender(t *testing.T) {
	var s WelcomeSender = NopSender{}
	assert.NoError(t, s.SendWelcome(context.Background(), Welcome{To: "a@example.com"}))
}
