package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportIncomplete(t *testing.T) {
	r := Report{Files: []FileReport{
		{Name: "a", Path: "/a", Found: true, Results: []CheckResult{{Passed: true}, {Passed: false}}},
		{Name: "b", Path: "/b", Found: false},
		{Name: "c", Path: "/c", Found: true, Results: []CheckResult{{Passed: true}}},
	}}

	assert.Equal(t, []string{"/a"}, r.Incomplete())
	assert.False(t, r.AllPassed())
}

func TestReportAllPassed(t *testing.T) {
	r := Report{Files: []FileReport{
		{Found: true, Results: []CheckResult{{Passed: true}}},
		{Found: true},
	}}
	assert.True(t, r.AllPassed())
	assert.Empty(t, r.Incomplete())

	missing := FileReport{Found: false}
	assert.False(t, missing.Passed())
}
