package clean

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/yusufpapurcu/wmi"
)

// serviceTimeout is the maximum time to wait for one sc invocation.
// A hung Service Control Manager call must not wedge the cleanup run.
const serviceTimeout = 15 * time.Second

// win32Service mirrors the WMI Win32_Service class fields we read.
type win32Service struct {
	Name      string
	State     string
	StartMode string
}

// ServiceState returns the current state of a service ("Running",
// "Stopped", ...) via WMI. Used only for the debug trace; control flow
// never depends on it.
func ServiceState(name string) (string, error) {
	var services []win32Service
	query := fmt.Sprintf(
		"SELECT Name, State, StartMode FROM Win32_Service WHERE Name = %q", name)
	if err := wmi.Query(query, &services); err != nil {
		return "", err
	}
	if len(services) == 0 {
		return "", fmt.Errorf("service %q not found", name)
	}
	return services[0].State, nil
}

// StopService stops a Windows service through sc.exe.
func StopService(name string) error {
	return runSC("stop", name)
}

// StartService starts a Windows service through sc.exe.
func StartService(name string) error {
	return runSC("start", name)
}

func runSC(action, name string) error {
	ctx, cancel := context.WithTimeout(context.Background(), serviceTimeout)
	defer cancel()

	if err := exec.CommandContext(ctx, "sc", action, name).Run(); err != nil {
		return fmt.Errorf("sc %s %s: %w", action, name, err)
	}
	return nil
}
