package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripFences(t *testing.T) {
	t.Parallel()

	doc := "\\documentclass{article}\n\\begin{document}\nhi\n\\end{document}"

	assert.Equal(t, doc, stripFences(doc))
	assert.Equal(t, doc, stripFences("```latex\n"+doc+"\n```"))
	assert.Equal(t, doc, stripFences("```tex\n"+doc+"\n```"))
	assert.Equal(t, doc, stripFences("```\n"+doc+"\n```\n"))
	assert.Equal(t, doc, stripFences("  "+doc+"\n"))
}
