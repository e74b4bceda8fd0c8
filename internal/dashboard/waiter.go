package dashboard

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"resto-pos/internal/domain"
	"resto-pos/internal/pos/binder"
	"resto-pos/internal/pos/cart"
	"resto-pos/internal/pos/menu"
)

// waiterState carries the per-session pieces of the take-order flow.
type waiterState struct {
	tables []domain.Table
	menu   *menu.Menu
	// selection drives the take-order flow; viewer backs the read-only
	// order inspection. Each keeps its own fetch lifecycle.
	selection *binder.Binder
	viewer    *binder.Binder
	cart      *cart.Cart
}

// RunWaiter drives table selection, cart building and KOT submission.
func RunWaiter(ctx context.Context, deps Deps) error {
	printNav(deps.Session)

	st := &waiterState{
		selection: binder.New(deps.Client),
		viewer:    binder.New(deps.Client),
		cart:      cart.New(),
	}
	st.reload(ctx, deps)

	fmt.Println("commands: tables | select <n> | view <n> | menu [category] | find <text> |",
		"add <productId> [qty] | qty <row> <n> | rm <row> | cart | commit | finalize | reload | quit")

	commandLoop(ctx, func(cmd string, args []string) bool {
		switch cmd {
		case "tables":
			st.printTables()
		case "select":
			st.selectTable(ctx, deps, args)
		case "view":
			st.viewTable(ctx, args)
		case "menu":
			st.printMenu(args)
		case "find":
			st.find(args)
		case "add":
			st.add(args)
		case "qty":
			st.setQty(args)
		case "rm":
			st.remove(args)
		case "cart":
			st.printCart()
		case "commit":
			st.commit(ctx, deps)
		case "finalize":
			st.finalize(ctx, deps)
		case "reload":
			st.reload(ctx, deps)
		case "quit":
			return false
		default:
			fmt.Println("unknown command:", cmd)
		}
		return true
	})
	return nil
}

func (st *waiterState) reload(ctx context.Context, deps Deps) {
	tables, err := deps.Client.Tables(ctx)
	if err != nil {
		fmt.Println("could not load tables:", err)
	} else {
		st.tables = tables
	}
	products, err := deps.Client.Products(ctx)
	if err != nil {
		fmt.Println("could not load menu:", err)
	} else {
		st.menu = menu.Build(products)
	}
	st.printTables()
}

func (st *waiterState) printTables() {
	if len(st.tables) == 0 {
		fmt.Println("no tables loaded")
		return
	}
	for _, t := range st.tables {
		marker := " "
		if t.TableNumber == st.selection.Selected() {
			marker = ">"
		}
		fmt.Printf("%s table %-3d %s\n", marker, t.TableNumber, t.Status)
	}
}

// setLocalTableStatus flips the cached table row optimistically; the
// next reload reconciles with the store.
func (st *waiterState) setLocalTableStatus(tableNumber int, status domain.TableStatus) {
	for i := range st.tables {
		if st.tables[i].TableNumber == tableNumber {
			st.tables[i].Status = status
		}
	}
}

// selectTable starts the take-order flow: occupy the table, bind its
// active order, start a fresh cart.
func (st *waiterState) selectTable(ctx context.Context, deps Deps, args []string) {
	n, ok := argInt(args, 0)
	if !ok {
		fmt.Println("usage: select <tableNumber>")
		return
	}
	if _, err := deps.Client.UpdateTableStatus(ctx, n, domain.TableOccupied); err != nil {
		fmt.Println("could not occupy table:", err)
		return
	}
	st.setLocalTableStatus(n, domain.TableOccupied)
	st.cart = cart.New()
	st.selection.Select(ctx, n)
	if existing, ok := st.selection.Active(); ok {
		fmt.Printf("table %d has an open order (%s); new items will be added to it\n", n, existing.ID)
	} else {
		fmt.Printf("taking a new order for table %d\n", n)
	}
}

// viewTable inspects a table's order without touching the take-order
// selection.
func (st *waiterState) viewTable(ctx context.Context, args []string) {
	n, ok := argInt(args, 0)
	if !ok {
		fmt.Println("usage: view <tableNumber>")
		return
	}
	st.viewer.Select(ctx, n)
	if order, ok := st.viewer.Active(); ok {
		printOrder(order)
	} else {
		fmt.Printf("table %d has no active order\n", n)
	}
}

func (st *waiterState) printMenu(args []string) {
	if st.menu == nil {
		fmt.Println("menu not loaded")
		return
	}
	cats := st.menu.Categories()
	if len(args) > 0 {
		cats = []string{strings.Join(args, " ")}
	}
	for _, cat := range cats {
		fmt.Println(cat + ":")
		for _, p := range st.menu.Category(cat) {
			fmt.Printf("  %-8s %-24s %8.2f\n", p.ID, p.Name, p.Price)
		}
	}
}

func (st *waiterState) find(args []string) {
	if st.menu == nil || len(args) == 0 {
		fmt.Println("usage: find <text>")
		return
	}
	for _, p := range st.menu.Search(strings.Join(args, " "), 5) {
		fmt.Printf("  %-8s %-24s %8.2f\n", p.ID, p.Name, p.Price)
	}
}

func (st *waiterState) add(args []string) {
	if st.menu == nil || len(args) == 0 {
		fmt.Println("usage: add <productId> [qty]")
		return
	}
	qty := 1
	if n, ok := argInt(args, 1); ok {
		qty = n
	}
	for _, cat := range st.menu.Categories() {
		for _, p := range st.menu.Category(cat) {
			if p.ID == args[0] {
				st.cart.AddItem(p, qty)
				st.printCart()
				return
			}
		}
	}
	fmt.Println("no such product:", args[0])
}

func (st *waiterState) setQty(args []string) {
	row, ok1 := argInt(args, 0)
	qty, ok2 := argInt(args, 1)
	if !ok1 || !ok2 {
		fmt.Println("usage: qty <row> <n>")
		return
	}
	st.cart.SetQty(row, qty)
	st.printCart()
}

func (st *waiterState) remove(args []string) {
	row, ok := argInt(args, 0)
	if !ok {
		fmt.Println("usage: rm <row>")
		return
	}
	st.cart.RemoveItem(row)
	st.printCart()
}

func (st *waiterState) printCart() {
	items := st.cart.Items()
	if len(items) == 0 {
		fmt.Println("cart is empty")
		return
	}
	for i, it := range items {
		fmt.Printf("  [%d] %-24s x%-3d %8.2f\n", i, it.Name, it.Qty, it.Total)
	}
	t := st.cart.Totals()
	fmt.Printf("  subtotal %.2f  gst %.2f  grand total %.2f\n", t.Subtotal, t.GST, t.GrandTotal)
}

// commit sends the staged items as a KOT: a delta when the bound order
// exists, a new order otherwise.
func (st *waiterState) commit(ctx context.Context, deps Deps) {
	tableNumber := st.selection.Selected()
	if tableNumber == 0 {
		fmt.Println("select a table first")
		return
	}
	var existing *domain.Order
	if order, ok := st.selection.Active(); ok {
		existing = &order
	}
	result, err := st.cart.Commit(ctx, deps.Client, tableNumber, deps.Session.User.ID, existing)
	if err != nil {
		fmt.Println("could not send KOT:", err)
		return
	}
	st.selection.Replace(result)
	fmt.Printf("items sent to kitchen for table %d (order %s)\n", tableNumber, result.ID)
}

func (st *waiterState) finalize(ctx context.Context, deps Deps) {
	order, ok := st.selection.Active()
	if !ok {
		fmt.Println("no active order to finalize for this table")
		return
	}
	done, err := deps.Client.FinalizeOrder(ctx, order.ID)
	if err != nil {
		fmt.Println("finalize failed:", err)
		return
	}
	st.setLocalTableStatus(done.TableNumber, domain.TableAvailable)
	st.selection.Clear()
	fmt.Printf("order %s finalized, table %d released\n", done.ID, done.TableNumber)
}

func argInt(args []string, i int) (int, bool) {
	if i >= len(args) {
		return 0, false
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, false
	}
	return n, true
}
