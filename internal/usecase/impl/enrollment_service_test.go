package impl

import (
	"context"
	"testing"
	"time"

	"pssports/internal/domain/entity"
	domainerrors "pssports/internal/domain/errors"
	"pssports/internal/domain/repository"
	"pssports/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlayerRepo struct {
	byID map[int64]*entity.Player
}

func (r *fakePlayerRepo) Create(ctx context.Context, player *entity.Player) error {
	r.byID[player.ID] = player

	return nil
}

func (r *fakePlayerRepo) FindByID(ctx context.Context, id int64) (*entity.Player, error) {
	player, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrPlayerNotFound
	}

	return player, nil
}

func (r *fakePlayerRepo) List(ctx context.Context) ([]*entity.Player, error) { return nil, nil }

func (r *fakePlayerRepo) Update(ctx context.Context, player *entity.Player) error { return nil }

func (r *fakePlayerRepo) Delete(ctx context.Context, id int64) error { return nil }

type fakeClassRepo struct {
	byID map[int64]*entity.Class
}

func (r *fakeClassRepo) Create(ctx context.Context, class *entity.Class) error {
	r.byID[class.ID] = class

	return nil
}

func (r *fakeClassRepo) FindByID(ctx context.Context, id int64) (*entity.Class, error) {
	class, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrClassNotFound
	}

	return class, nil
}

func (r *fakeClassRepo) List(ctx context.Context) ([]*entity.Class, error) { return nil, nil }

func (r *fakeClassRepo) Update(ctx context.Context, class *entity.Class) error { return nil }

func (r *fakeClassRepo) Delete(ctx context.Context, id int64) error { return nil }

type fakeEnrollmentRepo struct {
	nextID       int64
	byID         map[int64]*entity.Enrollment
	attendances  map[int64]*entity.Attendance
	nextAttendID int64
}

func newFakeEnrollmentRepo() *fakeEnrollmentRepo {
	return &fakeEnrollmentRepo{
		byID:        make(map[int64]*entity.Enrollment),
		attendances: make(map[int64]*entity.Attendance),
	}
}

func (r *fakeEnrollmentRepo) Create(ctx context.Context, enrollment *entity.Enrollment) error {
	r.nextID++
	enrollment.ID = r.nextID
	copied := *enrollment
	r.byID[enrollment.ID] = &copied

	return nil
}

func (r *fakeEnrollmentRepo) FindByID(ctx context.Context, id int64) (*entity.Enrollment, error) {
	enrollment, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrEnrollmentNotFound
	}
	copied := *enrollment

	return &copied, nil
}

func (r *fakeEnrollmentRepo) List(ctx context.Context) ([]*entity.Enrollment, error) {
	enrollments := make([]*entity.Enrollment, 0, len(r.byID))
	for _, enrollment := range r.byID {
		copied := *enrollment
		enrollments = append(enrollments, &copied)
	}

	return enrollments, nil
}

func (r *fakeEnrollmentRepo) Update(ctx context.Context, enrollment *entity.Enrollment) error {
	if _, ok := r.byID[enrollment.ID]; !ok {
		return repository.ErrEnrollmentNotFound
	}
	copied := *enrollment
	r.byID[enrollment.ID] = &copied

	return nil
}

func (r *fakeEnrollmentRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return repository.ErrEnrollmentNotFound
	}
	delete(r.byID, id)

	return nil
}

func (r *fakeEnrollmentRepo) CreateAttendance(ctx context.Context, attendance *entity.Attendance) error {
	if _, ok := r.byID[attendance.EnrollmentID]; !ok {
		return repository.ErrEnrollmentNotFound
	}
	r.nextAttendID++
	attendance.ID = r.nextAttendID
	copied := *attendance
	r.attendances[attendance.ID] = &copied

	return nil
}

func (r *fakeEnrollmentRepo) FindAttendanceByID(ctx context.Context, id int64) (*entity.Attendance, error) {
	attendance, ok := r.attendances[id]
	if !ok {
		return nil, repository.ErrAttendanceNotFound
	}
	copied := *attendance

	return &copied, nil
}

func (r *fakeEnrollmentRepo) ListAttendances(ctx context.Context) ([]*entity.Attendance, error) {
	attendances := make([]*entity.Attendance, 0, len(r.attendances))
	for _, attendance := range r.attendances {
		copied := *attendance
		attendances = append(attendances, &copied)
	}

	return attendances, nil
}

func (r *fakeEnrollmentRepo) ListAttendancesByEnrollment(ctx context.Context, enrollmentID int64) ([]*entity.Attendance, error) {
	var attendances []*entity.Attendance
	for _, attendance := range r.attendances {
		if attendance.EnrollmentID == enrollmentID {
			copied := *attendance
			attendances = append(attendances, &copied)
		}
	}

	return attendances, nil
}

func (r *fakeEnrollmentRepo) UpdateAttendance(ctx context.Context, attendance *entity.Attendance) error {
	if _, ok := r.attendances[attendance.ID]; !ok {
		return repository.ErrAttendanceNotFound
	}
	copied := *attendance
	r.attendances[attendance.ID] = &copied

	return nil
}

func (r *fakeEnrollmentRepo) DeleteAttendance(ctx context.Context, id int64) error {
	if _, ok := r.attendances[id]; !ok {
		return repository.ErrAttendanceNotFound
	}
	delete(r.attendances, id)

	return nil
}

type enrollmentFixture struct {
	svc         usecase.EnrollmentUsecase
	enrollments *fakeEnrollmentRepo
	classes     *fakeClassRepo
}

func newEnrollmentFixture(t *testing.T) *enrollmentFixture {
	t.Helper()

	players := &fakePlayerRepo{byID: map[int64]*entity.Player{
		1: {ID: 1},
	}}
	classes := &fakeClassRepo{byID: map[int64]*entity.Class{
		10: {ID: 10, Name: "Sub-11 Manhã", Status: entity.ClassActive},
		11: {ID: 11, Name: "Sub-13 Tarde", Status: entity.ClassInactive},
	}}
	enrollments := newFakeEnrollmentRepo()

	txManager := &fakeTxManager{factory: &fakeRepoFactory{
		players:     players,
		classes:     classes,
		enrollments: enrollments,
	}}

	return &enrollmentFixture{
		svc:         NewEnrollmentService(txManager, testLogger()),
		enrollments: enrollments,
		classes:     classes,
	}
}

func TestEnrollmentCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("DefaultsToPending", func(t *testing.T) {
		f := newEnrollmentFixture(t)

		enrollment, err := f.svc.Create(ctx, usecase.EnrollmentInput{
			EntryDate: time.Now(),
			PlayerID:  1,
			ClassID:   10,
		})
		require.NoError(t, err)

		assert.Equal(t, entity.EnrollmentPending, enrollment.Status)
		assert.Len(t, f.enrollments.byID, 1)
	})

	t.Run("UnknownPlayer", func(t *testing.T) {
		f := newEnrollmentFixture(t)

		_, err := f.svc.Create(ctx, usecase.EnrollmentInput{PlayerID: 99, ClassID: 10})
		assert.ErrorIs(t, err, domainerrors.ErrPlayerNotFound)
	})

	t.Run("InactiveClassRejected", func(t *testing.T) {
		f := newEnrollmentFixture(t)

		_, err := f.svc.Create(ctx, usecase.EnrollmentInput{PlayerID: 1, ClassID: 11})
		assert.ErrorIs(t, err, domainerrors.ErrClassNotFound)
		assert.Empty(t, f.enrollments.byID)
	})
}

func TestAttendanceLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newEnrollmentFixture(t)

	enrollment, err := f.svc.Create(ctx, usecase.EnrollmentInput{
		EntryDate: time.Now(),
		Status:    string(entity.EnrollmentActive),
		PlayerID:  1,
		ClassID:   10,
	})
	require.NoError(t, err)

	t.Run("CreateRequiresEnrollment", func(t *testing.T) {
		_, err := f.svc.CreateAttendance(ctx, usecase.AttendanceInput{
			ClassDate:    time.Now(),
			Status:       1,
			EnrollmentID: 999,
		})
		assert.ErrorIs(t, err, domainerrors.ErrEnrollmentNotFound)
	})

	t.Run("CreateListUpdateDelete", func(t *testing.T) {
		attendance, err := f.svc.CreateAttendance(ctx, usecase.AttendanceInput{
			ClassDate:    time.Now(),
			Status:       1,
			EnrollmentID: enrollment.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, attendance.Status)

		byEnrollment, err := f.svc.ListAttendancesByEnrollment(ctx, enrollment.ID)
		require.NoError(t, err)
		assert.Len(t, byEnrollment, 1)

		updated, err := f.svc.UpdateAttendance(ctx, attendance.ID, usecase.AttendanceInput{
			ClassDate:    attendance.ClassDate,
			Status:       0,
			EnrollmentID: enrollment.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, 0, updated.Status)

		require.NoError(t, f.svc.DeleteAttendance(ctx, attendance.ID))
		assert.ErrorIs(t, f.svc.DeleteAttendance(ctx, attendance.ID), domainerrors.ErrAttendanceNotFound)
	})
}
