package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const timesheetHeader = "Date,User Name,Email Id,Employee Code,Client,Project,Task Type,Hours(For Calculation),Notes\n"

func TestParseTimesheetCSV(t *testing.T) {
	csv := timesheetHeader +
		"01/09/25,Asha Rao,asha@example.com,DP-001,Acme,Platform Build,Development,7.5,sprint work\n" +
		"02/09/25,Asha Rao,asha@example.com,DP-001,Acme,Platform Build,Review,1.25,\n"

	rows, summary, err := parseTimesheetCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 0, summary.Skipped)

	assert.Equal(t, "asha@example.com", rows[0].email)
	assert.Equal(t, "Platform Build", rows[0].project)
	assert.Equal(t, 7.5, rows[0].hours)
	assert.Equal(t, 2025, rows[0].date.Year())
	assert.Equal(t, 9, int(rows[0].date.Month()))
	assert.Equal(t, 1, rows[0].date.Day())
}

func TestParseTimesheetCSVSkipsBadRows(t *testing.T) {
	csv := timesheetHeader +
		"01/09/25,Asha Rao,,DP-001,Acme,Platform Build,Development,7.5,\n" +
		"bad-date,Asha Rao,asha@example.com,DP-001,Acme,Platform Build,Development,7.5,\n" +
		"02/09/25,Asha Rao,asha@example.com,DP-001,Acme,Platform Build,Development,-1,\n" +
		"03/09/25,Asha Rao,asha@example.com,DP-001,Acme,Platform Build,Development,8,\n"

	rows, summary, err := parseTimesheetCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 3, summary.Skipped)
	require.Len(t, summary.Errors, 3)
	assert.Contains(t, summary.Errors[0], "missing Email Id")
	assert.Contains(t, summary.Errors[1], "invalid Date")
	assert.Contains(t, summary.Errors[2], "invalid Hours")
}

func TestParseTimesheetCSVMissingColumn(t *testing.T) {
	csv := "Date,Email Id,Project\n01/09/25,asha@example.com,Platform Build\n"

	_, _, err := parseTimesheetCSV(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Hours(For Calculation)")
}

func TestTimesheetRowHashStableAndCaseInsensitiveEmail(t *testing.T) {
	csv := timesheetHeader +
		"01/09/25,Asha Rao,asha@example.com,DP-001,Acme,Platform Build,Development,7.5,notes\n"
	rows, _, err := parseTimesheetCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	a := timesheetRowHash(rows[0])
	assert.Equal(t, a, timesheetRowHash(rows[0]))

	upper := rows[0]
	upper.email = "ASHA@EXAMPLE.COM"
	assert.Equal(t, a, timesheetRowHash(upper))

	changed := rows[0]
	changed.hours = 8
	assert.NotEqual(t, a, timesheetRowHash(changed))
}
