// Package seed fills an empty store with the demo cryptocurrencies and user.
package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/go-petr/coin-wallet/internal/domain"
)

// CryptoService is the part of the cryptocurrency service the seed needs.
type CryptoService interface {
	Create(ctx context.Context, arg domain.CreateCryptocurrencyParams) (domain.Cryptocurrency, error)
	GetBySymbol(ctx context.Context, symbol string) (domain.Cryptocurrency, error)
}

// UserService is the part of the user service the seed needs.
type UserService interface {
	Create(ctx context.Context, in domain.CreateUserInput) (domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
}

const imageURL = "https://images.unsplash.com/photo-%s?ixlib=rb-4.0.3&auto=format&fit=crop&w=100&h=100"

func image(id string) *string {
	s := fmt.Sprintf(imageURL, id)
	return &s
}

func amount(s string) *string {
	return &s
}

// Cryptocurrencies returns the listed cryptocurrencies in seeding order.
func Cryptocurrencies() []domain.CreateCryptocurrencyParams {
	return []domain.CreateCryptocurrencyParams{
		{
			Symbol:    "BTC",
			Name:      "Bitcoin",
			Icon:      image("1518546305927-5a555bb7020d"),
			Price:     "42350.00",
			Change24h: "2.34",
			MarketCap: amount("830000000000.00"),
		},
		{
			Symbol:    "ETH",
			Name:      "Ethereum",
			Icon:      image("1621761191319-c6fb62004040"),
			Price:     "2680.50",
			Change24h: "-1.23",
			MarketCap: amount("322000000000.00"),
		},
		{
			Symbol:    "ADA",
			Name:      "Cardano",
			Icon:      image("1639762681485-074b7f938ba0"),
			Price:     "0.48",
			Change24h: "5.67",
			MarketCap: amount("17000000000.00"),
		},
		{
			Symbol:    "SOL",
			Name:      "Solana",
			Icon:      image("1518546305927-5a555bb7020d"),
			Price:     "98.32",
			Change24h: "3.45",
			MarketCap: amount("42000000000.00"),
		},
	}
}

// DemoUser returns the sign-up data of the demo user.
func DemoUser() domain.CreateUserInput {
	return domain.CreateUserInput{
		Username:         "alexchen",
		Password:         "password123",
		Email:            "alex.chen@gameexpert.com",
		FirstName:        "Alex",
		LastName:         "Chen",
		Avatar:           image("1507003211169-0a1dd7228f2d"),
		TotalBalance:     "12450.67",
		AvailableBalance: "8250.30",
	}
}

// Run creates every seed entry that is not in the store yet.
func Run(ctx context.Context, cs CryptoService, us UserService) error {
	l := zerolog.Ctx(ctx)

	for _, arg := range Cryptocurrencies() {
		_, err := cs.GetBySymbol(ctx, arg.Symbol)
		switch err {
		case nil:
			continue
		case domain.ErrCryptocurrencyNotFound:
		default:
			return fmt.Errorf("get cryptocurrency %s: %w", arg.Symbol, err)
		}

		crypto, err := cs.Create(ctx, arg)
		if err != nil {
			return fmt.Errorf("create cryptocurrency %s: %w", arg.Symbol, err)
		}

		l.Debug().Int32("id", crypto.ID).Str("symbol", crypto.Symbol).Msg("seeded cryptocurrency")
	}

	in := DemoUser()

	_, err := us.GetByUsername(ctx, in.Username)
	switch err {
	case nil:
		return nil
	case domain.ErrUserNotFound:
	default:
		return fmt.Errorf("get user %s: %w", in.Username, err)
	}

	user, err := us.Create(ctx, in)
	if err != nil {
		return fmt.Errorf("create user %s: %w", in.Username, err)
	}

	l.Debug().Int32("id", user.ID).Str("username", user.Username).Msg("seeded user")

	return nil
}
