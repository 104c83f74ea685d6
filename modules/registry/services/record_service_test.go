package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civisafe/civisafe/modules/complaints/domain/entities/officer"
	"github.com/civisafe/civisafe/modules/registry/domain/entities/criminal"
	"github.com/civisafe/civisafe/modules/registry/domain/entities/missingperson"
	"github.com/civisafe/civisafe/modules/registry/services"
)

type recordFixture struct {
	svc          *services.RecordService
	missing      *memoryMissingRepo
	criminals    *memoryCriminalRepo
	officers     *stubOfficerRepo
	contributors *memoryContributorRepo
}

func newRecordFixture() *recordFixture {
	f := &recordFixture{
		missing:      newMemoryMissingRepo(),
		criminals:    newMemoryCriminalRepo(),
		officers:     &stubOfficerRepo{byUserID: map[int64]officer.Officer{}},
		contributors: newMemoryContributorRepo(),
	}
	f.svc = services.NewRecordService(f.missing, f.criminals, f.officers, f.contributors)
	return f
}

func (f *recordFixture) addOfficer(userID, policeID int64, station string) {
	f.officers.byUserID[userID] = officer.Hydrate(
		policeID, userID, "SI-001", station, officer.RankSubInspector, "A. Kumar", "a@p.in",
	)
}

func TestAddMissingPerson_StampsStationAndDefaults(t *testing.T) {
	f := newRecordFixture()
	f.addOfficer(10, 5, "302001")

	got, err := f.svc.AddMissingPerson(context.Background(), 10, &missingperson.CreateDTO{
		Name:         "Ravi Sharma",
		Age:          34,
		LastSeenTime: time.Now(),
		Pincode:      "302015",
	})
	require.NoError(t, err)

	assert.Equal(t, "302001", got.RegisteredPincode)
	assert.Equal(t, int64(5), got.AddedBy)
	assert.Equal(t, missingperson.StatusActive, got.Status)
	assert.Equal(t, "302015", got.Pincode)
}

func TestAddMissingPerson_UnknownOfficer(t *testing.T) {
	f := newRecordFixture()

	_, err := f.svc.AddMissingPerson(context.Background(), 99, &missingperson.CreateDTO{
		Name: "Ravi Sharma",
	})
	assert.ErrorIs(t, err, officer.ErrNotFound)
}

func TestAddCriminal_StartsWanted(t *testing.T) {
	f := newRecordFixture()
	f.addOfficer(10, 5, "302001")

	dto := &criminal.CreateDTO{
		Name:         "Unknown suspect",
		LastSeenTime: time.Now(),
		Pincode:      "302015",
	}
	dto.Normalize()

	got, err := f.svc.AddCriminal(context.Background(), 10, dto)
	require.NoError(t, err)
	assert.Equal(t, criminal.StatusWanted, got.Status)
	assert.Equal(t, 1, got.Star)
	assert.Equal(t, "302001", got.RegisteredPincode)
}

func TestStationRecords_ScopedToRegisteredPincode(t *testing.T) {
	f := newRecordFixture()
	f.addOfficer(10, 5, "302001")

	// Filed by this station but last seen elsewhere.
	_, err := f.missing.Create(context.Background(), missingperson.MissingPerson{
		Name: "Ravi", RegisteredPincode: "302001", Pincode: "110001",
	})
	require.NoError(t, err)
	// Filed by another station inside this neighbourhood.
	_, err = f.missing.Create(context.Background(), missingperson.MissingPerson{
		Name: "Sita", RegisteredPincode: "110001", Pincode: "302001",
	})
	require.NoError(t, err)

	set, err := f.svc.StationRecords(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, set.MissingPersons, 1)
	assert.Equal(t, "Ravi", set.MissingPersons[0].Name)
	assert.Equal(t, "302001", set.Pincode)
}

func TestAreaRecords_ExplicitPincodeWins(t *testing.T) {
	f := newRecordFixture()
	f.contributors.add(42, "Meera", "110001", 0)

	_, err := f.missing.Create(context.Background(), missingperson.MissingPerson{
		Name: "Ravi", RegisteredPincode: "999999", Pincode: "302001",
	})
	require.NoError(t, err)

	set, err := f.svc.AreaRecords(context.Background(), 42, "302001")
	require.NoError(t, err)
	assert.Equal(t, "302001", set.Pincode)
	assert.Len(t, set.MissingPersons, 1)
}

func TestAreaRecords_FallsBackToProfilePincode(t *testing.T) {
	f := newRecordFixture()
	f.contributors.add(42, "Meera", "302001", 0)

	_, err := f.criminals.Create(context.Background(), criminal.Criminal{
		Name: "Suspect", Pincode: "302001", Star: 2,
	})
	require.NoError(t, err)

	set, err := f.svc.AreaRecords(context.Background(), 42, "")
	require.NoError(t, err)
	assert.Equal(t, "302001", set.Pincode)
	assert.Len(t, set.Criminals, 1)
}

func TestAreaRecords_NoPincodeAnywhere(t *testing.T) {
	f := newRecordFixture()
	f.contributors.add(42, "Meera", "", 0)

	_, err := f.svc.AreaRecords(context.Background(), 42, "")
	assert.ErrorIs(t, err, services.ErrMissingAreaPincode)
}

func TestUpdateMissingPerson_AppliesPatch(t *testing.T) {
	f := newRecordFixture()
	created, err := f.missing.Create(context.Background(), missingperson.MissingPerson{
		Name: "Ravi", Status: missingperson.StatusActive,
	})
	require.NoError(t, err)

	status := "found"
	reward := 5000
	got, err := f.svc.UpdateMissingPerson(context.Background(), created.ID, &missingperson.PatchDTO{
		Status:              &status,
		RewardOnInformation: &reward,
	})
	require.NoError(t, err)
	assert.Equal(t, missingperson.StatusFound, got.Status)
	assert.Equal(t, 5000, got.RewardOnInformation)
}

func TestUpdateMissingPerson_EmptyPatch(t *testing.T) {
	f := newRecordFixture()
	_, err := f.svc.UpdateMissingPerson(context.Background(), 1, &missingperson.PatchDTO{})
	assert.ErrorIs(t, err, missingperson.ErrEmptyPatch)
}

func TestUpdateCriminal_RejectsInvalidStar(t *testing.T) {
	f := newRecordFixture()
	star := 6
	_, err := f.svc.UpdateCriminal(context.Background(), 1, &criminal.PatchDTO{Star: &star})
	assert.ErrorIs(t, err, criminal.ErrInvalidStar)
}

func TestDeleteCriminal_ReturnsDeletedRecord(t *testing.T) {
	f := newRecordFixture()
	created, err := f.criminals.Create(context.Background(), criminal.Criminal{Name: "Suspect", Star: 3})
	require.NoError(t, err)

	got, err := f.svc.DeleteCriminal(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Suspect", got.Name)

	_, err = f.svc.DeleteCriminal(context.Background(), created.ID)
	assert.ErrorIs(t, err, criminal.ErrNotFound)
}
