// Package servicekit implements the Service Object pattern: each concrete
// operation encapsulates a single unit of business logic behind a uniform
// run/result/success/errors contract. The business logic executes at most
// once per Service instance, its return value is cached, and failures are
// reported as structured error records rather than returned errors.
//
// A concrete operation implements the Operation interface and is wrapped by
// a Service created with New:
//
//	type CreateUser struct {
//		Params UserParams
//	}
//
//	func (op *CreateUser) Call(s *servicekit.Service) any {
//		user, err := createUser(op.Params)
//		if err != nil {
//			s.Fail(err.Error())
//			return nil
//		}
//		return user
//	}
//
//	svc, err := servicekit.New(&CreateUser{Params: params})
//	if err != nil {
//		// nil operation
//	}
//	if svc.Success() {
//		user := svc.Result().(*User)
//		_ = user
//	} else {
//		records, _ := svc.Errors()
//		_ = records
//	}
//
// A Service instance is intended for a single goroutine; it performs no
// internal locking, and concurrent access to one instance is undefined.
package servicekit
