// Package dashboard hosts the three console dashboards. Each one owns a
// Feed over the shared push channel and a REST client; all rendering is
// plain line output.
package dashboard

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"resto-pos/internal/domain"
	"resto-pos/internal/logger"
	"resto-pos/internal/pos/push"
	"resto-pos/internal/pos/rest"
	"resto-pos/internal/pos/session"
)

// Deps is everything a dashboard needs, injected by the bootstrap.
type Deps struct {
	Client  *rest.Client
	Push    push.Channel
	Session *session.Session
	Logger  *logger.Logger
}

// commandLoop reads stdin lines and hands them to handle until ctx ends
// or the operator quits.
func commandLoop(ctx context.Context, handle func(cmd string, args []string) bool) {
	lines := make(chan string)
	go func() {
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		close(lines)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			fields := strings.Fields(line)
			if len(fields) == 0 {
				continue
			}
			if !handle(fields[0], fields[1:]) {
				return
			}
		}
	}
}

func printNav(sess *session.Session) {
	fmt.Printf("%s panel: %s\n", sess.Role(), sess.User.Name)
	for _, entry := range sess.Role().NavEntries() {
		fmt.Printf("  %-18s %s\n", entry.Name, entry.Path)
	}
}

func printOrder(o domain.Order) {
	fmt.Printf("%s  table %d  %-9s  subtotal %.2f  gst %.2f  total %.2f\n",
		o.ID, o.TableNumber, o.Status, o.Subtotal, o.GST, o.GrandTotal)
	for _, it := range o.Items {
		fmt.Printf("    %-24s x%-3d %8.2f\n", it.Name, it.Qty, it.Total)
	}
}

func printOrders(orders []domain.Order) {
	if len(orders) == 0 {
		fmt.Println("no orders yet")
		return
	}
	for _, o := range orders {
		printOrder(o)
	}
}
