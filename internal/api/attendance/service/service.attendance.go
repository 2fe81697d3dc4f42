package attendancesvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	attendancemodels "github.com/batkt/sudalgaaQRBackend/internal/api/attendance/models"
	basesvc "github.com/batkt/sudalgaaQRBackend/internal/api/base/service"
	"github.com/batkt/sudalgaaQRBackend/internal/common"
	"github.com/batkt/sudalgaaQRBackend/internal/global"
	"github.com/batkt/sudalgaaQRBackend/internal/utility"
)

const dayLayout = "2006-01-02"

// AttendanceService manages daily check-ins.
type AttendanceService struct {
	basesvc.BaseServiceMongoImpl[attendancemodels.Attendance]
}

// NewAttendanceService creates an AttendanceService.
func NewAttendanceService() (*AttendanceService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Attendance)
	if !exist {
		return nil, fmt.Errorf("failed to get attendance collection: %v", common.ErrNotFound)
	}
	return &AttendanceService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[attendancemodels.Attendance](collection),
	}, nil
}

// CheckIn records today's check-in for the employee. A repeated check-in on
// the same day is rejected; the unique dayKey index backs the check under
// concurrent requests.
func (s *AttendanceService) CheckIn(ctx context.Context, employeeID primitive.ObjectID) (attendancemodels.Attendance, error) {
	var zero attendancemodels.Attendance

	now := time.Now()
	day := now.Format(dayLayout)
	dayKey := utility.ObjectID2String(employeeID) + ":" + day

	exists, err := s.DocumentExists(ctx, bson.M{"dayKey": dayKey})
	if err != nil {
		return zero, err
	}
	if exists {
		return zero, common.NewError(common.ErrCodeBusinessState, "Өнөөдөр ирц бүртгэгдсэн байна", common.StatusConflict, nil)
	}

	return s.InsertOne(ctx, attendancemodels.Attendance{
		EmployeeID:  employeeID,
		Day:         day,
		DayKey:      dayKey,
		CheckedInAt: now.UnixMilli(),
	})
}
