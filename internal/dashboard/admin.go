package dashboard

import (
	"context"
	"fmt"

	"resto-pos/internal/domain"
)

// RunAdmin shows every order with live updates and lets the operator
// move orders through statuses.
func RunAdmin(ctx context.Context, deps Deps) error {
	printNav(deps.Session)

	feed := NewFeed()
	if err := feed.Load(ctx, deps.Client); err != nil {
		// degraded start: the push channel still fills the view
		deps.Logger.Error("orders_load_failed", err, nil)
	}
	feed.Attach(deps.Push, func() { fmt.Println("* order update received (type 'orders' to view)") })
	defer feed.Detach()

	printOrders(feed.Orders())
	fmt.Println("commands: orders | status <orderId> <Pending|Preparing|Ready|Served|Completed> | reload | quit")

	commandLoop(ctx, func(cmd string, args []string) bool {
		switch cmd {
		case "orders":
			printOrders(feed.Orders())
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
			printOrders(feed.Orders())
		case "quit":
			return false
		default:
			fmt.Println("unknown command:", cmd)
		}
		return true
	})
	return nil
}
