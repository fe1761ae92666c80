package routes

import (
	"playwin/controllers/customer"
	"playwin/middlewares"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App) {
	app.Post("/customer/login", customer.Login)
	app.Post("/customer/register", customer.Register)

	routes := app.Group("/customer", middlewares.CustomerAuthMiddleware)

	routes.Get("/game-schedule", customer.GameSchedule)
	routes.Get("/play-now/:providerId", customer.ProviderSlots)
	routes.Get("/play-now/:providerId/:slotTimeId", customer.SlotGames)

	routes.Post("/check-wallet", customer.CheckWallet)
	routes.Get("/wallet-bonus-balance", customer.WalletBonusBalance)

	routes.Get("/cart", customer.GetCart)
	routes.Post("/cart", customer.AddToCart)
	routes.Delete("/cart/:cartId", customer.RemoveFromCart)
	routes.Delete("/cart", customer.ClearCart)

	routes.Post("/place-order", customer.PlaceOrder)
	routes.Get("/orders-history", customer.OrdersHistory)

	routes.Get("/profile", customer.Profile)
	routes.Post("/withdraw", customer.Withdraw)
	routes.Get("/withdraw-history", customer.WithdrawHistory)
	routes.Post("/bank-details", customer.SaveBankDetails)
	routes.Get("/bank-details", customer.GetBankDetails)

	routes.Get("/payment-history", customer.PaymentHistory)
	routes.Get("/results", customer.Results)
}
