package main

import (
	"log"
	"net/http"

	"zemmai-dev/agenda-coords/config"
	"zemmai-dev/agenda-coords/domain/model"
	"zemmai-dev/agenda-coords/usecase"

	"github.com/joho/godotenv"
	"github.com/line/line-bot-sdk-go/v7/linebot"
)

func DotenvLoad() {
	err := godotenv.Load()
	if err != nil {
		log.Print(err)
	}
}

func main() {
	DotenvLoad()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	venue, err := cfg.Venue()
	if err != nil {
		log.Fatal(err)
	}

	vu, err := usecase.NewVenueUsecase(venue, cfg.Unit)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("venue: %s", venue)

	bot, err := linebot.New(cfg.ChannelSecret, cfg.ChannelAccessToken)
	if err != nil {
		log.Fatal(err)
	}

	http.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		events, err := bot.ParseRequest(r)
		if err != nil {
			if err == linebot.ErrInvalidSignature {
				w.WriteHeader(400)
			} else {
				w.WriteHeader(500)
			}
			return
		}

		for _, event := range events {
			if event.Type != linebot.EventTypeMessage {
				continue
			}

			var replyMessage linebot.SendingMessage

			switch message := event.Message.(type) {
			case *linebot.LocationMessage:
				replyMessage = linebot.NewTextMessage(locationReply(vu, message))
			default:
				locationAction := linebot.NewLocationAction("Send location")
				quickReplyItems := linebot.NewQuickReplyItems(linebot.NewQuickReplyButton("", locationAction))
				replyMessage = linebot.NewTextMessage("Share your location to see how far the venue is.").WithQuickReplies(quickReplyItems)
			}

			if _, err = bot.ReplyMessage(event.ReplyToken, replyMessage).Do(); err != nil {
				log.Print(err)
			}
		}
	})

	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		log.Fatal(err)
	}
}

func locationReply(vu usecase.VenueUsecase, message *linebot.LocationMessage) string {
	from, err := model.FromLocationMessage(message, nil)
	if err != nil {
		log.Printf("location message: %v", err)
		return "Sorry, that location could not be read."
	}
	log.Printf("location: %s", from)

	loc, _ := from.Location()
	reply, err := vu.Reply(loc)
	if err != nil {
		log.Printf("reply: %v", err)
		return "Sorry, the distance could not be computed."
	}

	return reply
}
