// Command storefront is a terminal front end for the recipe/food ordering
// backend. It owns no business logic; it wires the session store, cart
// synchronizer, checkout flow and search client together and renders their
// state.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/savorworks/storefront-client/internal/cart"
	"github.com/savorworks/storefront-client/internal/checkout"
	"github.com/savorworks/storefront-client/internal/config"
	"github.com/savorworks/storefront-client/internal/models"
	"github.com/savorworks/storefront-client/internal/search"
	"github.com/savorworks/storefront-client/internal/session"
	"github.com/savorworks/storefront-client/pkg/storeapi"
)

const usage = `usage: storefront <command> [args]

commands:
  signup -name <full name> -email <email> -password <password>
  login -email <email> -password <password>
  logout
  profile
  browse
  search <query>
  cart [show]
  cart add -item <foodItemId> [-qty <n>]
  cart rm -line <lineItemId>
  cart qty -line <lineItemId> -qty <n>
  cart clear
  checkout [-address <street> -phone <number> -city <city>]
  orders [cancel -order <orderId>]
  admin products|food-add|food-rm|product-add|product-rm|orders|status [...]
`

type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	api     storeapi.Client
	session *session.Store
	cart    *cart.Synchronizer
}

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	_ = godotenv.Load()

	configFlag := flag.String("config", "", "path to the yaml config file")
	flag.Parse()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = *configFlag
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Error("can not read config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	vault, err := buildVault(cfg)
	if err != nil {
		logger.Error("failed to initialize session vault", slog.String("error", err.Error()))
		os.Exit(1)
	}

	a := &app{
		cfg:    cfg,
		logger: logger,
		api:    storeapi.New(&cfg.API, logger),
	}
	a.session = session.New(vault, logger)
	a.cart = cart.NewSynchronizer(a.api, a.session, logger)

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx := context.Background()

	if err := a.dispatch(ctx, args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
		os.Exit(1)
	}
}

func buildVault(cfg *config.Config) (session.Vault, error) {
	switch cfg.Session.Driver {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Username: cfg.Redis.Username,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		return session.NewRedisVault(client, cfg.Session.TTL), nil
	case "file", "":
		return session.NewFileVault(cfg.Session.Path), nil
	default:
		return nil, fmt.Errorf("unknown session driver %q", cfg.Session.Driver)
	}
}

func (a *app) dispatch(ctx context.Context, args []string) error {
	switch args[0] {
	case "signup":
		return a.signup(ctx, args[1:])
	case "login":
		return a.login(ctx, args[1:])
	case "logout":
		a.session.Logout()
		fmt.Println("logged out")

		return nil
	case "profile":
		return a.profile()
	case "browse":
		return a.browse(ctx)
	case "search":
		return a.search(ctx, args[1:])
	case "cart":
		return a.cartCmd(ctx, args[1:])
	case "checkout":
		return a.checkout(ctx, args[1:])
	case "orders":
		return a.orders(ctx, args[1:])
	case "admin":
		return a.admin(ctx, args[1:])
	default:
		fmt.Fprint(os.Stderr, usage)

		return fmt.Errorf("unknown command %q", args[0])
	}
}

func (a *app) signup(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ExitOnError)
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "email")
	password := fs.String("password", "", "password")
	_ = fs.Parse(args)

	user, err := a.api.Signup(ctx, &models.SignupRequest{FullName: *name, Email: *email, Password: *password})
	if err != nil {
		return err
	}

	a.session.Login(user)
	fmt.Printf("welcome, %s\n", user.FullName)

	return nil
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "email")
	password := fs.String("password", "", "password")
	_ = fs.Parse(args)

	user, err := a.api.Login(ctx, &models.LoginRequest{Email: *email, Password: *password})
	if err != nil {
		return err
	}

	a.session.Login(user)
	fmt.Printf("logged in as %s\n", user.FullName)

	return nil
}

func (a *app) profile() error {
	sess, ok := a.session.Current()
	if !ok {
		fmt.Println("not logged in")

		return nil
	}

	fmt.Printf("#%d %s <%s>\n", sess.ID, sess.FullName, sess.Email)

	if sess.HasDeliveryDetails() {
		fmt.Printf("delivers to: %s, %s (%s)\n", sess.Address, sess.City, sess.PhNumber)
	}

	return nil
}

func (a *app) browse(ctx context.Context) error {
	items, err := a.api.ListFoodItems(ctx)
	if err != nil {
		return err
	}

	for _, item := range items {
		fmt.Printf("%4d  %-30s Rs. %.0f\n", item.ID, item.Name, item.Price)
	}

	return nil
}

func (a *app) search(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("search needs a query")
	}

	done := make(chan []models.FoodItem, 1)

	client := search.NewClient(a.api, a.cfg.Search.Debounce, a.logger, func(items []models.FoodItem) {
		done <- items
	})
	defer client.Close()

	client.Query(args[0])

	select {
	case items := <-done:
		if len(items) == 0 {
			fmt.Println("no results")
		}

		for _, item := range items {
			fmt.Printf("%4d  %-30s Rs. %.0f\n", item.ID, item.Name, item.Price)
		}
	case <-time.After(a.cfg.API.Timeout + a.cfg.Search.Debounce):
		return fmt.Errorf("search timed out")
	}

	return nil
}

func (a *app) cartCmd(ctx context.Context, args []string) error {
	sub := "show"
	if len(args) > 0 {
		sub = args[0]
		args = args[1:]
	}

	switch sub {
	case "show":
		if err := a.cart.Fetch(ctx); err != nil {
			return err
		}

		return a.printCart()
	case "add":
		fs := flag.NewFlagSet("cart add", flag.ExitOnError)
		itemID := fs.Int64("item", 0, "food item id")
		qty := fs.Int("qty", 1, "quantity")
		_ = fs.Parse(args)

		if err := a.cart.Fetch(ctx); err != nil {
			return err
		}

		if err := a.cart.Add(ctx, &models.FoodItem{ID: *itemID}, *qty); err != nil {
			return err
		}

		return a.printCart()
	case "rm":
		fs := flag.NewFlagSet("cart rm", flag.ExitOnError)
		lineID := fs.Int64("line", 0, "cart line id")
		_ = fs.Parse(args)

		if err := a.cart.Fetch(ctx); err != nil {
			return err
		}

		if err := a.cart.Remove(ctx, *lineID); err != nil {
			return err
		}

		return a.printCart()
	case "qty":
		fs := flag.NewFlagSet("cart qty", flag.ExitOnError)
		lineID := fs.Int64("line", 0, "cart line id")
		qty := fs.Int("qty", 1, "quantity")
		_ = fs.Parse(args)

		if err := a.cart.Fetch(ctx); err != nil {
			return err
		}

		if err := a.cart.UpdateQuantity(ctx, *lineID, *qty); err != nil {
			return err
		}

		return a.printCart()
	case "clear":
		return a.cart.Clear(ctx)
	default:
		return fmt.Errorf("unknown cart subcommand %q", sub)
	}
}

func (a *app) printCart() error {
	items := a.cart.Items()
	if len(items) == 0 {
		fmt.Println("cart is empty")

		return nil
	}

	for _, item := range items {
		fmt.Printf("line %d: %s x%d @ Rs. %.0f\n", item.ID, item.DisplayName(), item.Quantity, item.UnitPrice())
	}

	fmt.Printf("total: %d items, Rs. %.0f\n", a.cart.TotalItems(), a.cart.TotalPrice())

	return nil
}

func (a *app) checkout(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("checkout", flag.ExitOnError)
	address := fs.String("address", "", "street address")
	phone := fs.String("phone", "", "phone number")
	city := fs.String("city", "", "city")
	_ = fs.Parse(args)

	if err := a.cart.Fetch(ctx); err != nil {
		return err
	}

	flow := checkout.NewFlow(a.api, a.session, a.cart, a.logger)

	if flow.AddressEditRequired() || *address != "" {
		form := &models.AddressForm{Address: *address, PhNumber: *phone, City: *city}
		if err := flow.SubmitAddress(ctx, form); err != nil {
			return err
		}
	}

	fmt.Printf("placing order: %d items, Rs. %.0f, cash on delivery\n", flow.TotalItems(), flow.Total())

	if err := flow.PlaceOrder(ctx); err != nil {
		return err
	}

	fmt.Printf("order #%d placed\n", flow.OrderID())

	return nil
}

func (a *app) orders(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "cancel" {
		fs := flag.NewFlagSet("orders cancel", flag.ExitOnError)
		orderID := fs.Int64("order", 0, "order id")
		_ = fs.Parse(args[1:])

		if err := a.api.CancelOrder(ctx, *orderID); err != nil {
			return err
		}

		fmt.Printf("order #%d cancelled\n", *orderID)

		return nil
	}

	userID := a.session.UserID()
	if userID == 0 {
		return fmt.Errorf("log in to view your orders")
	}

	orders, err := a.api.ListUserOrders(ctx, userID)
	if err != nil {
		return err
	}

	for _, order := range orders {
		fmt.Printf("order #%d  %-10s %d items  Rs. %.0f  %s\n",
			order.Ref(), order.Status, order.TotalItems, order.TotalAmount, order.OrderDate.Format(time.DateOnly))
	}

	return nil
}

func (a *app) admin(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("admin needs a subcommand")
	}

	switch args[0] {
	case "products":
		products, err := a.api.ListProducts(ctx)
		if err != nil {
			return err
		}

		for _, p := range products {
			fmt.Printf("%4d  %-30s Rs. %.0f\n", p.ID, p.Name, p.Price)
		}

		return nil
	case "food-add":
		fs := flag.NewFlagSet("admin food-add", flag.ExitOnError)
		name := fs.String("name", "", "name")
		desc := fs.String("desc", "", "description")
		price := fs.Float64("price", 0, "price")
		category := fs.String("category", "", "category")
		_ = fs.Parse(args[1:])

		item, err := a.api.CreateFoodItem(ctx, &models.CreateFoodItemRequest{
			Name: *name, Description: *desc, Price: *price, Category: *category,
		})
		if err != nil {
			return err
		}

		fmt.Printf("created food item #%d\n", item.ID)

		return nil
	case "food-rm":
		return a.adminDelete(ctx, args[1:], a.api.DeleteFoodItem)
	case "product-add":
		fs := flag.NewFlagSet("admin product-add", flag.ExitOnError)
		name := fs.String("name", "", "name")
		desc := fs.String("desc", "", "description")
		price := fs.Float64("price", 0, "price")
		_ = fs.Parse(args[1:])

		product, err := a.api.CreateProduct(ctx, &models.CreateProductRequest{
			Name: *name, Description: *desc, Price: *price,
		})
		if err != nil {
			return err
		}

		fmt.Printf("created product #%d\n", product.ID)

		return nil
	case "product-rm":
		return a.adminDelete(ctx, args[1:], a.api.DeleteProduct)
	case "orders":
		orders, err := a.api.ListOrders(ctx)
		if err != nil {
			return err
		}

		for _, order := range orders {
			fmt.Printf("order #%d  %-10s Rs. %.0f\n", order.Ref(), order.Status, order.TotalAmount)
		}

		return nil
	case "status":
		fs := flag.NewFlagSet("admin status", flag.ExitOnError)
		orderID := fs.Int64("order", 0, "order id")
		status := fs.String("to", "", "new status")
		_ = fs.Parse(args[1:])

		return a.api.UpdateOrderStatus(ctx, *orderID, models.OrderStatus(*status))
	default:
		return fmt.Errorf("unknown admin subcommand %q", args[0])
	}
}

func (a *app) adminDelete(ctx context.Context, args []string, del func(context.Context, int64) error) error {
	if len(args) == 0 {
		return fmt.Errorf("missing id")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", args[0])
	}

	return del(ctx, id)
}
