package dashboard

import (
	"context"
	"fmt"

	"resto-pos/internal/domain"
)

// RunKitchen shows the live ticket queue (everything not yet Completed)
// and a completed-orders view, mirroring the two kitchen screens.
func RunKitchen(ctx context.Context, deps Deps) error {
	printNav(deps.Session)

	feed := NewFeed()
	if err := feed.Load(ctx, deps.Client); err != nil {
		deps.Logger.Error("orders_load_failed", err, nil)
	}
	feed.Attach(deps.Push, func() { fmt.Println("* ticket update (type 'queue' to view)") })
	defer feed.Detach()

	live := func(s domain.OrderStatus) bool { return s != domain.StatusCompleted }
	done := func(s domain.OrderStatus) bool { return s == domain.StatusCompleted }

	printOrders(feed.OrdersWithStatus(live))
	fmt.Println("commands: queue | completed | status <orderId> <status> | reload | quit")

	commandLoop(ctx, func(cmd string, args []string) bool {
		switch cmd {
		case "queue":
			printOrders(feed.OrdersWithStatus(live))
		case "completed":
			printOrders(feed.OrdersWithStatus(done))
		case "status":
			if len(args) != 2 {
				fmt.Println("usage: status <orderId> <status>")
				return true
			}
			if _, err := deps.Client.UpdateOrderStatus(ctx, args[0], domain.OrderStatus(args[1])); err != nil {
				fmt.Println("status change failed:", err)
			}
		case "reload":
			if err := feed.Load(ctx, deps.Client); err != nil {
				fmt.Println("reload failed:", err)
			}
			printOrders(feed.OrdersWithStatus(live))
		case "quit":
			return false
		default:
			fmt.Println("unknown command:", cmd)
		}
		return true
	})
	return nil
}
