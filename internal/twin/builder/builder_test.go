// internal/twin/builder/builder_test.go
package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foresight/internal/common/errors"
	"foresight/internal/models"
)

func validForm() FormValues {
	return FormValues{
		Age:           "34",
		TenureMonths:  "48",
		RemoteWork:    true,
		Education:     "Master",
		Location:      "Metro",
		Title:         "Software Engineer",
		Industry:      "Technology",
		AvgSleepHours: "7.25",
		Horizon:       models.HorizonTwoYears,
	}
}

func TestBuild_ExactValues(t *testing.T) {
	req, err := Build(validForm())
	require.NoError(t, err)

	assert.Equal(t, 34, req.UserData.Age)
	assert.Equal(t, 48, req.UserData.TenureMonths)
	assert.Equal(t, 1, req.UserData.RemoteFlag)
	assert.Equal(t, "Master", req.UserData.Education)
	assert.Equal(t, "Metro", req.UserData.Location)
	assert.Equal(t, "Software Engineer", req.UserData.Title)
	assert.Equal(t, "Technology", req.UserData.Industry)
	assert.Equal(t, 7.25, req.UserData.AvgSleepHours)
	assert.Equal(t, 24, req.ProjectionMonths)
}

func TestBuild_RemoteFlagOff(t *testing.T) {
	form := validForm()
	form.RemoteWork = false

	req, err := Build(form)
	require.NoError(t, err)
	assert.Equal(t, 0, req.UserData.RemoteFlag)
}

func TestBuild_TrimsWhitespaceAroundNumerics(t *testing.T) {
	form := validForm()
	form.Age = " 29 "
	form.AvgSleepHours = "8.0 "

	req, err := Build(form)
	require.NoError(t, err)
	assert.Equal(t, 29, req.UserData.Age)
	assert.Equal(t, 8.0, req.UserData.AvgSleepHours)
}

func TestBuild_ParseFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FormValues)
	}{
		{name: "age not a number", mutate: func(f *FormValues) { f.Age = "thirty" }},
		{name: "age empty", mutate: func(f *FormValues) { f.Age = "" }},
		{name: "age fractional", mutate: func(f *FormValues) { f.Age = "34.5" }},
		{name: "tenure not a number", mutate: func(f *FormValues) { f.TenureMonths = "4y" }},
		{name: "sleep not a number", mutate: func(f *FormValues) { f.AvgSleepHours = "lots" }},
		{name: "sleep empty", mutate: func(f *FormValues) { f.AvgSleepHours = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			req, err := Build(form)
			assert.Nil(t, req)
			require.Error(t, err)

			stdErr, ok := err.(*errors.StandardError)
			require.True(t, ok)
			assert.Equal(t, errors.ErrCodeInputParseFailed, stdErr.Code)
		})
	}
}

func TestBuild_NoRangeOrEnumChecks(t *testing.T) {
	form := validForm()
	form.Age = "-5"
	form.AvgSleepHours = "400"
	form.Education = "Hogwarts"
	form.Horizon = models.Horizon(13) // not in the fixed set; server's problem

	req, err := Build(form)
	require.NoError(t, err)
	assert.Equal(t, -5, req.UserData.Age)
	assert.Equal(t, 400.0, req.UserData.AvgSleepHours)
	assert.Equal(t, "Hogwarts", req.UserData.Education)
	assert.Equal(t, 13, req.ProjectionMonths)
}
