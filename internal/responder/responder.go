// Package responder computes assistant reply text from input text.
// It is pure and deterministic: no I/O, no state.
package responder

import (
	"fmt"
	"strings"
)

// Rule maps a set of trigger substrings to a canned reply.
// Matching is case-insensitive and substring-based.
type Rule struct {
	Keywords []string
	Reply    string
}

// Rules are evaluated in order; the first rule with a matching keyword wins.
// Order matters: a message containing both "hello" and "deploy" gets the
// greeting reply.
var Rules = []Rule{
	{
		Keywords: []string{"hello", "hi", "hey"},
		Reply:    "Hey! I'm CodeBro 🤖💙 — your coding sidekick. Ask me about React, FastAPI, MongoDB, Tailwind, or deployment!",
	},
	{
		Keywords: []string{"deploy", "deployment"},
		Reply: "Deployment tips:\n" +
			"- Frontend: build with Vite (npm run build) and host static files (Vercel/Netlify).\n" +
			"- Backend: use FastAPI + Uvicorn on a server (Railway/Render/Fly.io).\n" +
			"- Set DATABASE_URL and DATABASE_NAME env vars.\n" +
			"- Enable CORS and point frontend to your backend URL via VITE_BACKEND_URL.",
	},
	{
		Keywords: []string{"react"},
		Reply: "In React with Vite: manage state with hooks (useState/useEffect), fetch from your API using fetch/axios, and use Tailwind for rapid UI.\n" +
			"Need a quick example?\n\n" +
			"useEffect(() => { fetch('/api').then(r=>r.json()).then(setData); }, []);",
	},
	{
		Keywords: []string{"fastapi", "python"},
		Reply: "FastAPI quickstart:\n\n" +
			"from fastapi import FastAPI\napp = FastAPI()\n@app.get('/')\ndef home(): return {'ok': True}\n\n" +
			"Run with: uvicorn main:app --reload",
	},
	{
		Keywords: []string{"mongodb", "mongo", "database"},
		Reply: "MongoDB patterns:\n- Use a single client and reuse the db handle.\n- Store timestamps (created_at/updated_at).\n- Index frequent query fields.\n- Keep references by storing ObjectId as string if you prefer simple JSON APIs.",
	},
	{
		Keywords: []string{"tailwind"},
		Reply:    "Tailwind tip: compose utilities and extract components when repeated. Use container, max-w-*, and prose for long content.",
	},
	{
		Keywords: []string{"code", "bug", "error", "fix"},
		Reply: "Debug flow I recommend:\n1) Reproduce reliably.\n2) Read the exact error and the stack.\n3) Minimize to a tiny snippet.\n4) Add logs/prints.\n5) Fix, then add a test to avoid regressions.",
	},
}

// Respond maps a non-empty user message to a reply. Same input, same output.
func Respond(message string) string {
	trimmed := strings.TrimSpace(message)
	normalized := strings.ToLower(trimmed)

	for _, rule := range Rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(normalized, keyword) {
				return rule.Reply
			}
		}
	}

	return fmt.Sprintf(
		"I hear you! Here's a quick, actionable reply:\n\n"+
			"- Summary: you said → \"%s\"\n"+
			"- Next step: break it into smaller tasks and tackle them one by one.\n"+
			"- Want code? Paste a snippet and I'll review it.",
		trimmed,
	)
}
