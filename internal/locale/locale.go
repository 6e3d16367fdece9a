// Package locale holds the user-facing string bundles. Templates use
// %-style positional placeholders and HTML markup.
package locale

// Bundle is the full set of strings for one locale.
type Bundle struct {
	Welcome         string
	SelectCoin      string
	SelectPool      string
	SelectExchanger string

	// MinedResult args: pool website, pool name, coin balance, coin
	// symbol, exchanger website, exchanger name, usd balance, buy
	// price, sell price.
	MinedResult string
	// RewardResult args: per hour, day, week, month, year (coin amounts).
	RewardResult string

	// PoolError / ExchangerError take one detail arg.
	PoolError       string
	ExchangerError  string
	UnexpectedError string
}

var bundles = map[string]Bundle{
	"en": {
		Welcome: "Hi 👋\nSend me a wallet address and I will estimate what it has mined.\n" +
			"Any message shows the coin list; pick a coin, a pool and an exchanger to get the balance.",
		SelectCoin:      "Select a coin:",
		SelectPool:      "Select a pool:",
		SelectExchanger: "Select an exchanger:",
		MinedResult: "<a href=\"%s\">%s</a> balance: <b>%s %s</b>\n" +
			"<a href=\"%s\">%s</a>: <b>$%s</b> (buy $%s / sell $%s)",
		RewardResult: "\nEstimated reward:\n" +
			"<b>hour:</b> %s <b>day:</b> %s <b>week:</b> %s\n" +
			"<b>month:</b> %s <b>year:</b> %s",
		PoolError:       "Pool error: <b>%s</b>",
		ExchangerError:  "Exchanger error: <b>%s</b>",
		UnexpectedError: "Something went wrong, please try again.",
	},
	"ru": {
		Welcome: "Привет 👋\nОтправь адрес кошелька, и я посчитаю, сколько на нём намайнено.\n" +
			"Любое сообщение покажет список монет; выбери монету, пул и биржу.",
		SelectCoin:      "Выберите монету:",
		SelectPool:      "Выберите пул:",
		SelectExchanger: "Выберите биржу:",
		MinedResult: "<a href=\"%s\">%s</a> баланс: <b>%s %s</b>\n" +
			"<a href=\"%s\">%s</a>: <b>$%s</b> (покупка $%s / продажа $%s)",
		RewardResult: "\nОжидаемая награда:\n" +
			"<b>час:</b> %s <b>день:</b> %s <b>неделя:</b> %s\n" +
			"<b>месяц:</b> %s <b>год:</b> %s",
		PoolError:       "Ошибка пула: <b>%s</b>",
		ExchangerError:  "Ошибка биржи: <b>%s</b>",
		UnexpectedError: "Что-то пошло не так, попробуйте ещё раз.",
	},
}

// ForLocale returns the bundle for the given locale key, falling back
// to English.
func ForLocale(key string) Bundle {
	if b, ok := bundles[key]; ok {
		return b
	}
	return bundles["en"]
}
