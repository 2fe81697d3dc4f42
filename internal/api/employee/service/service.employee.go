package employeesvc

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	basesvc "github.com/batkt/sudalgaaQRBackend/internal/api/base/service"
	departmentsvc "github.com/batkt/sudalgaaQRBackend/internal/api/department/service"
	employeedto "github.com/batkt/sudalgaaQRBackend/internal/api/employee/dto"
	employeemodels "github.com/batkt/sudalgaaQRBackend/internal/api/employee/models"
	"github.com/batkt/sudalgaaQRBackend/internal/api/middleware"
	"github.com/batkt/sudalgaaQRBackend/internal/common"
	"github.com/batkt/sudalgaaQRBackend/internal/global"
	"github.com/batkt/sudalgaaQRBackend/internal/hierarchy"
	"github.com/batkt/sudalgaaQRBackend/internal/utility"
)

const tokenLifetime = 24 * time.Hour

// EmployeeService manages employees: CRUD via the base service plus import,
// authentication and department-path resolution against the live tree.
type EmployeeService struct {
	basesvc.BaseServiceMongoImpl[employeemodels.Employee]
	DepartmentService *departmentsvc.DepartmentService
}

// NewEmployeeService creates an EmployeeService.
func NewEmployeeService() (*EmployeeService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Employees)
	if !exist {
		return nil, fmt.Errorf("failed to get employees collection: %v", common.ErrNotFound)
	}
	departmentService, err := departmentsvc.NewDepartmentService()
	if err != nil {
		return nil, err
	}
	return &EmployeeService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[employeemodels.Employee](collection),
		DepartmentService:    departmentService,
	}, nil
}

// RegisterExists reports whether an employee with the register is stored.
func (s *EmployeeService) RegisterExists(ctx context.Context, register string) (bool, error) {
	return s.DocumentExists(ctx, bson.M{"register": register})
}

// InsertEmployees inserts one import batch and returns the stored count.
func (s *EmployeeService) InsertEmployees(ctx context.Context, employees []employeemodels.Employee) (int, error) {
	created, err := s.InsertMany(ctx, employees)
	if err != nil {
		return 0, err
	}
	return len(created), nil
}

// ImportRows resolves every decoded sheet row against the current hierarchy
// and persists the batch. The default password comes from configuration and
// is hashed once per run.
func (s *EmployeeService) ImportRows(ctx context.Context, rows [][]string) (*employeedto.ImportResult, error) {
	roots, err := s.DepartmentService.GetHierarchy(ctx)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(global.ServerConfig.ImportDefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, err)
	}

	return RunImport(ctx, rows, roots, s, ImportOptions{
		PasswordHash: string(hash),
		Policy:       hierarchy.DefaultClassifierPolicy(),
	})
}

// Login verifies credentials and issues a signed token.
func (s *EmployeeService) Login(ctx context.Context, input *employeedto.LoginInput) (*employeedto.LoginResult, error) {
	employee, err := s.FindOne(ctx, bson.M{"loginName": input.LoginName}, nil)
	if err != nil {
		if err == common.ErrNotFound {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(employee.Password), []byte(input.Password)) != nil {
		return nil, common.ErrInvalidCredentials
	}

	now := time.Now()
	claims := middleware.TokenClaims{
		EmployeeID:  utility.ObjectID2String(employee.ID),
		LoginName:   employee.LoginName,
		AccessLevel: employee.AccessLevel,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(global.ServerConfig.JwtSecret))
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, err)
	}

	return &employeedto.LoginResult{
		Token:       token,
		EmployeeID:  utility.ObjectID2String(employee.ID),
		Name:        employee.Name,
		AccessLevel: employee.AccessLevel,
	}, nil
}

// ChangePassword verifies the old password and stores the new hash.
func (s *EmployeeService) ChangePassword(ctx context.Context, employeeID string, input *employeedto.ChangePasswordInput) error {
	id := utility.String2ObjectID(employeeID)
	employee, err := s.FindOneById(ctx, id)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(employee.Password), []byte(input.OldPassword)) != nil {
		return common.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, err)
	}

	_, err = s.UpdateById(ctx, id, map[string]interface{}{"password": string(hash)})
	return err
}

// FindAllResolved returns every employee with department names re-resolved
// against the live tree, so renames show up without re-import.
func (s *EmployeeService) FindAllResolved(ctx context.Context) ([]employeemodels.Employee, error) {
	employees, err := s.Find(ctx, nil, nil)
	if err != nil {
		return nil, err
	}
	roots, err := s.DepartmentService.GetHierarchy(ctx)
	if err != nil {
		return nil, err
	}

	for i := range employees {
		for j, assignment := range employees[i].DepartmentAssignments {
			if node, ok := hierarchy.FindByID(roots, assignment.DepartmentID); ok {
				employees[i].DepartmentAssignments[j].DepartmentName = node.Name
			}
		}
	}
	return employees, nil
}
