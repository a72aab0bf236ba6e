package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/voidshard/cooker/internal/mocks/pkg/engine_mock"
	"github.com/voidshard/cooker/pkg/errors"
	"github.com/voidshard/cooker/pkg/structs"
)

func TestSessionStart(t *testing.T) {
	cases := []struct {
		Name         string
		StartResult  structs.Result
		ExpectValid  bool
		ExpectStatus structs.SessionStatus
	}{
		{"Success", structs.ResultSuccess, true, structs.SessionConnected},
		{"Failure", structs.ResultFailure, false, structs.SessionFailed},
		{"NoLicense", structs.ResultNoLicenseFound, false, structs.SessionNoLicense},
		{"NCLicense", structs.ResultDisallowedNCLicenseFound, false, structs.SessionNoLicense},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			eng := engine_mock.NewMockEngine(gomock.NewController(t))
			eng.EXPECT().StartSession().Return(c.StartResult)

			s := NewSession(eng)
			assert.Equal(t, structs.SessionNotStarted, s.Status())
			assert.False(t, s.Started())

			err := s.Start()

			if c.ExpectValid {
				assert.Nil(t, err)
			} else {
				assert.ErrorIs(t, err, errors.ErrNoSession)
			}
			assert.True(t, s.Started())
			assert.Equal(t, c.ExpectValid, s.Valid())
			assert.Equal(t, c.ExpectStatus, s.Status())
		})
	}
}

func TestSessionStartTwice(t *testing.T) {
	eng := engine_mock.NewMockEngine(gomock.NewController(t))
	eng.EXPECT().StartSession().Return(structs.ResultSuccess).Times(1)

	s := NewSession(eng)
	assert.Nil(t, s.Start())

	err := s.Start()

	assert.ErrorIs(t, err, errors.ErrSessionExists)
}

func TestSessionEngine(t *testing.T) {
	eng := engine_mock.NewMockEngine(gomock.NewController(t))
	eng.EXPECT().StartSession().Return(structs.ResultSuccess)
	eng.EXPECT().CloseSession().Return(structs.ResultSuccess)

	s := NewSession(eng)

	_, err := s.Engine()
	assert.ErrorIs(t, err, errors.ErrNoSession)

	assert.Nil(t, s.Start())
	got, err := s.Engine()
	assert.Nil(t, err)
	assert.Equal(t, eng, got)

	assert.Nil(t, s.Stop())
	assert.Equal(t, structs.SessionStopped, s.Status())
	_, err = s.Engine()
	assert.ErrorIs(t, err, errors.ErrNoSession)
}

func TestSessionMarkLost(t *testing.T) {
	eng := engine_mock.NewMockEngine(gomock.NewController(t))
	eng.EXPECT().StartSession().Return(structs.ResultSuccess)
	eng.EXPECT().CloseSession().Return(structs.ResultInvalidSession)

	s := NewSession(eng)
	assert.Nil(t, s.Start())

	s.MarkLost()

	assert.False(t, s.Valid())
	assert.Equal(t, structs.SessionLost, s.Status())

	// a later failure does not hide the loss
	s.SetStatus(structs.SessionFailed)
	assert.Equal(t, structs.SessionLost, s.Status())
}

func TestSessionSetStatus(t *testing.T) {
	cases := []struct {
		Name    string
		Started bool
		Current structs.SessionStatus
		Given   structs.SessionStatus
		Expect  structs.SessionStatus
	}{
		{"NotStartedIgnoresAll", false, structs.SessionNotStarted, structs.SessionConnected, structs.SessionNotStarted},
		{"StoppedFromConnected", true, structs.SessionConnected, structs.SessionStopped, structs.SessionStopped},
		{"StoppedFromFailed", true, structs.SessionFailed, structs.SessionStopped, structs.SessionFailed},
		{"FailedKeepsNoLicense", true, structs.SessionNoLicense, structs.SessionFailed, structs.SessionNoLicense},
		{"FailedKeepsLost", true, structs.SessionLost, structs.SessionFailed, structs.SessionLost},
		{"FailedFromConnected", true, structs.SessionConnected, structs.SessionFailed, structs.SessionFailed},
		{"NoLicenseFromConnected", true, structs.SessionConnected, structs.SessionNoLicense, structs.SessionNoLicense},
		{"ConnectedFromLost", true, structs.SessionLost, structs.SessionConnected, structs.SessionConnected},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			s := &Session{started: c.Started, status: c.Current}

			s.SetStatus(c.Given)

			assert.Equal(t, c.Expect, s.Status())
		})
	}
}
