package reply

import (
	"fmt"
	"strings"

	"yatta-helin-be/pkg/helin/catalog"
	"yatta-helin-be/pkg/helin/intent"
	"yatta-helin-be/pkg/store"
)

// PriceGeneralFaqID is consulted for the generic price reply when no
// service is selected yet.
const PriceGeneralFaqID = "faq-price-general"

// Templates holds the operator-facing contact details injected into replies.
type Templates struct {
	// ContactPhone is printed in the first handoff reply.
	ContactPhone string
}

func DefaultTemplates() Templates {
	return Templates{ContactPhone: "0530 487 23 33"}
}

// Input is everything the composer needs for one turn. Replies are a pure
// function of this input; no randomness, no I/O.
type Input struct {
	Intent  intent.Intent
	Session store.SessionContext
	Matched *catalog.FaqItem
	Product *catalog.Product

	UserName        string // effective name: detected this turn or stored
	SelectedService string // effective service: detected this turn or stored
	OnlyName        bool
	DetectedName    string

	FirstGreeting bool
	FirstHandoff  bool

	Draft                store.ReservationDraft
	ReservationCompleted bool
}

// Composer turns a resolved intent into the literal Turkish reply.
type Composer struct {
	catalog *catalog.Catalog
	t       Templates
}

func NewComposer(cat *catalog.Catalog, t Templates) *Composer {
	return &Composer{catalog: cat, t: t}
}

func (c *Composer) Compose(in Input) string {
	switch in.Intent {
	case intent.Greeting:
		return c.greeting(in)
	case intent.SalesFaq:
		return c.salesFaq(in)
	case intent.PriceNeedsService:
		return c.priceNeedsService(in)
	case intent.ProductInfo:
		return c.productInfo(in)
	case intent.Reservation:
		return c.reservation(in)
	case intent.Handoff:
		return c.handoff(in)
	default:
		return c.unknown(in)
	}
}

func (c *Composer) greeting(in Input) string {
	if in.OnlyName && in.DetectedName != "" {
		return fmt.Sprintf("Memnun oldum %s Bey, size nasıl yardımcı olabilirim?", in.DetectedName)
	}

	if in.FirstGreeting {
		reply := "Merhaba! Ben Helin, Yatta'nın dijital satış asistanıyım. Size yat kiralama, turlar veya organizasyonlar konusunda nasıl yardımcı olabilirim?"
		if greeting, ok := c.catalog.FaqByID(intent.GreetingFaqID); ok {
			reply = greeting.Answer
		}
		if in.SelectedService == "" {
			reply += "\n\nHangi hizmetimiz için bilgi almak istiyorsunuz? (Evlilik teklifi / Doğum günü / Yat turu)"
		}
		return reply
	}

	if in.UserName != "" {
		return fmt.Sprintf("Merhaba %s Bey! Size nasıl yardımcı olabilirim?", in.UserName)
	}
	return "Tekrar merhaba! Size nasıl yardımcı olabilirim?"
}

func (c *Composer) salesFaq(in Input) string {
	if in.Intent == intent.SalesFaq && in.Matched == nil {
		// catalog miss: a matched id that resolves to nothing degrades to a
		// clarification, never an error
		return c.unknown(in)
	}
	reply := in.Matched.Answer
	if in.UserName != "" && reply != "" {
		runes := []rune(reply)
		reply = fmt.Sprintf("%s Bey, %s%s", in.UserName, strings.ToLower(string(runes[0])), string(runes[1:]))
	}
	return reply
}

func (c *Composer) priceNeedsService(in Input) string {
	if in.SelectedService != "" {
		return servicePriceInfo(in.SelectedService, in.UserName)
	}

	reply := "Fiyatlarımız seçtiğiniz hizmete göre değişmektedir."
	if priceFaq, ok := c.catalog.FaqByID(PriceGeneralFaqID); ok {
		reply = priceFaq.Answer
	}
	reply += "\n\nHangi hizmetimiz için fiyat bilgisi almak istersiniz? (Evlilik teklifi / Doğum günü / Yat turu)"
	return reply
}

func (c *Composer) productInfo(in Input) string {
	if in.Product == nil {
		return c.unknown(in)
	}
	if !in.Product.HasPrice() {
		return fmt.Sprintf("\"%s\" için fiyatlarımız talep üzerine belirlenmektedir. Size özel bir teklif hazırlamamızı ister misiniz?", in.Product.Name)
	}
	return fmt.Sprintf("\"%s\" için fiyatımız %.0f %s. Detaylı bilgi almak ister misiniz?", in.Product.Name, in.Product.Price, in.Product.Currency)
}

func (c *Composer) reservation(in Input) string {
	if in.ReservationCompleted {
		return fmt.Sprintf(
			"Harika! Rezervasyon talebinizi aldım: %s hizmeti, %s tarihi, saat %s, %d kişi. Ekibimiz %s numaranızdan sizi arayarak onaylayacak.",
			serviceDisplayName(in.SelectedService), in.Draft.Date, in.Draft.Time, in.Draft.People, in.Draft.Phone,
		)
	}

	missing := in.Draft.MissingSlots()
	if len(missing) == 0 {
		return "Rezervasyon bilgileriniz tamam, ekibimiz sizinle iletişime geçecek."
	}

	prefix := ""
	if in.UserName != "" {
		prefix = in.UserName + " Bey, "
	}

	switch missing[0] {
	case "date":
		return prefix + "rezervasyonunuz için hangi tarihi düşünüyorsunuz?"
	case "time":
		return prefix + "hangi saatte başlamak istersiniz?"
	case "people":
		return prefix + "kaç kişi katılacaksınız?"
	default:
		return prefix + "size ulaşabileceğimiz bir telefon numarası alabilir miyim?"
	}
}

func (c *Composer) handoff(in Input) string {
	if in.FirstHandoff {
		return fmt.Sprintf(
			"Bu konuda size tam yanıt veremiyorum, ancak sizi müşteri temsilcimize yönlendirebilirim. WhatsApp üzerinden %s numarasından veya web sitemizden iletişim bilgilerinizi bırakarak size dönüş yapılmasını sağlayabilirsiniz.",
			c.t.ContactPhone,
		)
	}
	return "Talebinizi canlı temsilcimize ilettim, en kısa sürede size dönüş yapılacak. Bu arada adınızı ve telefonunuzu da bırakabilirsiniz."
}

func (c *Composer) unknown(in Input) string {
	if in.UserName != "" {
		return fmt.Sprintf("%s Bey, bunu tam anlayamadım. Hangi hizmetimizle ilgilendiğinizi biraz daha açabilir misiniz? (Evlilik teklifi / Doğum günü / Yat turu)", in.UserName)
	}
	return "Bunu tam anlayamadım. Hangi hizmetimizle ilgilendiğinizi biraz daha açabilir misiniz? (Evlilik teklifi / Doğum günü / Yat turu)"
}

// servicePriceInfo is the per-service price explanation used once the user
// has picked a service.
func servicePriceInfo(service, userName string) string {
	prefix := ""
	if userName != "" {
		prefix = userName + " Bey, "
	}

	switch service {
	case store.ServiceProposal:
		return prefix + "evlilik teklifi organizasyonlarımız için fiyatlarımız paketin içeriğine göre değişmektedir. Özel süslemeler, yemek, müzik gibi seçeneklere göre 15.000 TL'den başlayan paketlerimiz var. Size özel bir teklif hazırlayabiliriz."
	case store.ServiceBirthday:
		return prefix + "doğum günü kutlamalarımız için fiyatlarımız kişi sayısı ve özel isteklere göre değişmektedir. Genellikle 8.000 TL'den başlayan paketlerimiz mevcuttur."
	case store.ServiceYachtTour:
		return prefix + "yat turları için fiyatlarımız seçtiğiniz tekneye, kişi sayısına ve tur süresine göre değişmektedir. Yarım günlük turlar 3.000 TL'den, tam günlük turlar ise 5.000 TL'den başlamaktadır."
	default:
		return prefix + "fiyatlarımız seçtiğiniz hizmete göre değişmektedir."
	}
}

func serviceDisplayName(service string) string {
	switch service {
	case store.ServiceProposal:
		return "evlilik teklifi"
	case store.ServiceBirthday:
		return "doğum günü"
	case store.ServiceYachtTour:
		return "yat turu"
	default:
		return "seçtiğiniz"
	}
}
