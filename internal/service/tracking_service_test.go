package service

import (
	"testing"

	"github.com/lshigami/Quolls/internal/dto"
	"github.com/lshigami/Quolls/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracking_CreateAndGet(t *testing.T) {
	svc := NewTrackingService(newFakeTrackingRepo())

	created, err := svc.Create(dto.TrackingUpsertDTO{AssessmentID: "do_assessment_1", ActiveStatus: model.TrackingStatusActive})
	require.NoError(t, err)
	assert.Equal(t, "do_assessment_1", created.AssessmentID)
	assert.Equal(t, model.TrackingStatusActive, created.ActiveStatus)

	got, err := svc.Get("do_assessment_1")
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestTracking_ActivatingDeactivatesOthers(t *testing.T) {
	repo := newFakeTrackingRepo()
	svc := NewTrackingService(repo)

	_, err := svc.Create(dto.TrackingUpsertDTO{AssessmentID: "do_assessment_1", ActiveStatus: model.TrackingStatusActive})
	require.NoError(t, err)
	_, err = svc.Create(dto.TrackingUpsertDTO{AssessmentID: "do_assessment_2", ActiveStatus: model.TrackingStatusActive})
	require.NoError(t, err)

	first, err := svc.Get("do_assessment_1")
	require.NoError(t, err)
	assert.Equal(t, model.TrackingStatusInactive, first.ActiveStatus)

	second, err := svc.Get("do_assessment_2")
	require.NoError(t, err)
	assert.Equal(t, model.TrackingStatusActive, second.ActiveStatus)
}

func TestTracking_UpdateFlipsStatus(t *testing.T) {
	svc := NewTrackingService(newFakeTrackingRepo())

	_, err := svc.Create(dto.TrackingUpsertDTO{AssessmentID: "do_assessment_1", ActiveStatus: model.TrackingStatusActive})
	require.NoError(t, err)

	updated, err := svc.Update("do_assessment_1", dto.TrackingUpdateDTO{ActiveStatus: model.TrackingStatusInactive})
	require.NoError(t, err)
	assert.Equal(t, model.TrackingStatusInactive, updated.ActiveStatus)
}

func TestTracking_UpdateMissingEntry(t *testing.T) {
	svc := NewTrackingService(newFakeTrackingRepo())

	_, err := svc.Update("do_assessment_ghost", dto.TrackingUpdateDTO{ActiveStatus: model.TrackingStatusInactive})
	assert.ErrorIs(t, err, ErrTrackingNotFound)
}

func TestTracking_GetMissingEntry(t *testing.T) {
	svc := NewTrackingService(newFakeTrackingRepo())

	_, err := svc.Get("do_assessment_ghost")
	assert.ErrorIs(t, err, ErrTrackingNotFound)
}

func TestTracking_List(t *testing.T) {
	svc := NewTrackingService(newFakeTrackingRepo())

	_, err := svc.Create(dto.TrackingUpsertDTO{AssessmentID: "do_assessment_1", ActiveStatus: model.TrackingStatusInactive})
	require.NoError(t, err)
	_, err = svc.Create(dto.TrackingUpsertDTO{AssessmentID: "do_assessment_2", ActiveStatus: model.TrackingStatusActive})
	require.NoError(t, err)

	entries, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
