package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hostelhub/hostelhub-api/internal/dto"
	"github.com/hostelhub/hostelhub-api/internal/models"
	"github.com/hostelhub/hostelhub-api/internal/repository"
	"github.com/hostelhub/hostelhub-api/internal/store"
	appErrors "github.com/hostelhub/hostelhub-api/pkg/errors"
)

func newFeeServiceForTest(t *testing.T) (*FeeService, *repository.FeeRepository) {
	t.Helper()
	s := store.New()
	fees := repository.NewFeeRepository(s)
	students := repository.NewStudentRepository(s)
	require.NoError(t, students.Create(&models.Student{ID: "stu-1", FullName: "Rahul Sharma", Email: "rahul@example.com"}))
	svc := NewFeeService(fees, students, nil, nil)
	svc.now = func() time.Time { return testNow }
	return svc, fees
}

func TestFeeServiceCreateResolvesStudentName(t *testing.T) {
	svc, _ := newFeeServiceForTest(t)

	fee, err := svc.Create(dto.CreateFeeRequest{
		StudentID:   "stu-1",
		Description: "Hostel fee, current term",
		Amount:      25000,
		DueDate:     "2026-04-30",
	})
	require.NoError(t, err)
	require.Equal(t, models.FeeStatusPending, fee.Status)
	require.Equal(t, "Rahul Sharma", fee.StudentName)
}

func TestFeeServiceRecordPaymentIsFinal(t *testing.T) {
	svc, fees := newFeeServiceForTest(t)
	fee, err := svc.Create(dto.CreateFeeRequest{
		StudentID:   "stu-1",
		Description: "Mess charges",
		Amount:      1500,
		DueDate:     "2026-04-30",
	})
	require.NoError(t, err)

	paid, err := svc.RecordPayment(fee.ID, dto.RecordPaymentRequest{PaymentRef: "TXN-001"})
	require.NoError(t, err)
	require.Equal(t, models.FeeStatusPaid, paid.Status)
	require.NotNil(t, paid.PaidAt)
	require.Equal(t, "TXN-001", paid.PaymentRef)

	_, err = svc.RecordPayment(fee.ID, dto.RecordPaymentRequest{PaymentRef: "TXN-002"})
	require.Error(t, err)
	require.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)

	stored, err := fees.GetByID(fee.ID)
	require.NoError(t, err)
	require.Equal(t, "TXN-001", stored.PaymentRef)
}

func TestFeeServiceOverdueDerivedAtReadTime(t *testing.T) {
	svc, _ := newFeeServiceForTest(t)
	_, err := svc.Create(dto.CreateFeeRequest{
		StudentID:   "stu-1",
		Description: "Last term arrears",
		Amount:      5000,
		DueDate:     "2026-01-31",
	})
	require.NoError(t, err)

	listed, err := svc.List(dto.FeeQuery{}, adminClaims())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, models.FeeStatusOverdue, listed[0].Status)
}

func TestFeeServiceSummary(t *testing.T) {
	svc, _ := newFeeServiceForTest(t)

	paid, err := svc.Create(dto.CreateFeeRequest{StudentID: "stu-1", Description: "Term fee", Amount: 25000, DueDate: "2026-04-30"})
	require.NoError(t, err)
	_, err = svc.RecordPayment(paid.ID, dto.RecordPaymentRequest{PaymentRef: "TXN-010"})
	require.NoError(t, err)

	_, err = svc.Create(dto.CreateFeeRequest{StudentID: "stu-1", Description: "Mess charges", Amount: 1500, DueDate: "2026-04-30"})
	require.NoError(t, err)
	_, err = svc.Create(dto.CreateFeeRequest{StudentID: "stu-1", Description: "Arrears", Amount: 5000, DueDate: "2026-01-31"})
	require.NoError(t, err)

	summary := svc.Summary()
	require.Equal(t, 31500.0, summary.TotalBilled)
	require.Equal(t, 25000.0, summary.TotalCollected)
	require.Equal(t, 6500.0, summary.TotalOutstanding)
	require.Equal(t, 1, summary.PendingCount)
	require.Equal(t, 1, summary.OverdueCount)
}

func TestFeeServiceListScopesStudents(t *testing.T) {
	svc, _ := newFeeServiceForTest(t)
	_, err := svc.Create(dto.CreateFeeRequest{StudentID: "stu-1", Description: "Term fee", Amount: 25000, DueDate: "2026-04-30"})
	require.NoError(t, err)
	_, err = svc.Create(dto.CreateFeeRequest{StudentID: "stu-2", Description: "Term fee", Amount: 25000, DueDate: "2026-04-30"})
	require.NoError(t, err)

	mine, err := svc.List(dto.FeeQuery{StudentID: "stu-2"}, studentClaims("stu-1"))
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, "stu-1", mine[0].StudentID)
}
