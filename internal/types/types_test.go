package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanResult(t *testing.T) {
	r := ScanResult{
		Files:   []FileFinding{{Path: "a/.env", Pattern: `\.env$`}},
		Content: []ContentFinding{{Path: "a/.env", Line: 2, Label: "Password Assignment"}, {Path: "b.txt", Line: 1, Label: "JWT Token"}},
	}
	assert.Equal(t, 3, r.Total())
	all := r.Findings()
	assert.Len(t, all, 3)
	assert.IsType(t, FileFinding{}, all[0])
	assert.Equal(t, "b.txt", all[2].FindingPath())
	assert.Zero(t, ScanResult{}.Total())
}

func TestAuditResult(t *testing.T) {
	r := AuditResult{Entries: []Coverage{
		{Pattern: ".env", Covered: true},
		{Pattern: "*.pem"},
		{Pattern: "*.key"},
	}}
	assert.Equal(t, 2, r.Missing())
	assert.Equal(t, []string{"*.pem", "*.key"}, r.MissingPatterns())
	assert.Nil(t, AuditResult{}.MissingPatterns())
}
