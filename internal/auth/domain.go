// internal/auth/domain.go
package auth

// Session identifies the employee currently operating the kiosk. It is
// created at login, carried explicitly through request contexts, and
// discarded at logout; nothing holds it in process-wide state.
type Session struct {
	EmployeeID   int    `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	Manager      bool   `json:"manager"`
}

// employee is the stored credential record backing authentication.
type employee struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Manager  bool   `json:"isManager"`
}
