package strtab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_String(t *testing.T) {
	assert.Equal(t, "FOUND", Found.String())
	assert.Equal(t, "NOT FOUND", NotFound.String())
	assert.Equal(t, "FAILED", Failed.String())

	// Out-of-range values collapse to the failure label.
	assert.Equal(t, "FAILED", Result(99).String())
}

func TestParseResult(t *testing.T) {
	assert.Equal(t, Found, ParseResult("FOUND"))
	assert.Equal(t, NotFound, ParseResult("NOT FOUND"))
	assert.Equal(t, Failed, ParseResult("FAILED"))

	assert.Equal(t, Failed, ParseResult(""))
	assert.Equal(t, Failed, ParseResult("found"))
	assert.Equal(t, Failed, ParseResult("bogus"))
}

func TestResult_RoundTrip(t *testing.T) {
	for _, r := range []Result{Found, NotFound, Failed} {
		assert.Equal(t, r, ParseResult(r.String()))
	}
}
