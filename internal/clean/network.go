package clean

import (
	"context"
	"fmt"
	"os/exec"
	"time"
)

// dnsFlushTimeout bounds the ipconfig call so a stuck resolver service
// cannot hang the run.
const dnsFlushTimeout = 15 * time.Second

// FlushDNS clears the OS resolver cache via ipconfig /flushdns.
func FlushDNS() error {
	ctx, cancel := context.WithTimeout(context.Background(), dnsFlushTimeout)
	defer cancel()

	if err := exec.CommandContext(ctx, "ipconfig", "/flushdns").Run(); err != nil {
		return fmt.Errorf("ipconfig /flushdns: %w", err)
	}
	return nil
}
