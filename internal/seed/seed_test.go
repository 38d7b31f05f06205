package seed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrerequisiteCSV(t *testing.T) {
	input := strings.NewReader(
		"Course,PrerequisiteNumber,0,1\n" +
			"CS125,0\n" +
			"CS225,2,CS125,MATH241\n" +
			"MATH241,1,MATH231\n")

	rows, seen, err := parsePrerequisiteCSV(input)
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, "CS125", rows[0].Course)
	assert.Empty(t, rows[0].Prereqs)
	assert.Equal(t, "CS225", rows[1].Course)
	assert.Equal(t, []string{"CS125", "MATH241"}, rows[1].Prereqs)

	// MATH231 only appears as a prerequisite but still counts as a course
	assert.True(t, seen["MATH231"])
	assert.Len(t, seen, 4)
}

func TestParsePrerequisiteCSV_SkipsBlankAndShortRows(t *testing.T) {
	input := strings.NewReader(
		"Course,PrerequisiteNumber,0\n" +
			"\n" +
			"CS125,0\n" +
			" ,1,CS125\n")

	rows, seen, err := parsePrerequisiteCSV(input)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "CS125", rows[0].Course)
	assert.Len(t, seen, 1)
}

func TestParsePrerequisiteCSV_MissingHeader(t *testing.T) {
	_, _, err := parsePrerequisiteCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestDepartmentOf(t *testing.T) {
	assert.Equal(t, "CS", departmentOf("CS225"))
	assert.Equal(t, "MATH", departmentOf("MATH 241"))
	assert.Equal(t, "AAS", departmentOf("AAS 100"))
	assert.Equal(t, "SEMINAR", departmentOf("SEMINAR"))
}
