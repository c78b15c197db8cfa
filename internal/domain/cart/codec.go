package cart

import (
	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"

	"github.com/harvesthub/storefront/internal/domain/catalog"
)

// The snapshot wire format is a JSON array of {product, quantity} objects in
// line order. Prices are encoded as strings so decimal values round-trip
// exactly. The format carries no version field; decodeSnapshot rejects
// anything it cannot parse and callers treat that as an absent snapshot.

func encodeSnapshot(lines []Line) []byte {
	var e jx.Encoder
	e.Arr(func(e *jx.Encoder) {
		for _, l := range lines {
			line := l
			e.Obj(func(e *jx.Encoder) {
				e.Field("product", func(e *jx.Encoder) {
					encodeProduct(e, line.Product)
				})
				e.Field("quantity", func(e *jx.Encoder) {
					e.Int(line.Quantity)
				})
			})
		}
	})
	return e.Bytes()
}

func encodeProduct(e *jx.Encoder, p catalog.Product) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(p.ID) })
		e.Field("name", func(e *jx.Encoder) { e.Str(p.Name) })
		e.Field("category", func(e *jx.Encoder) { e.Str(string(p.Category)) })
		e.Field("price", func(e *jx.Encoder) { e.Str(p.Price.String()) })
		e.Field("unit", func(e *jx.Encoder) { e.Str(p.Unit) })
		e.Field("image", func(e *jx.Encoder) { e.Str(p.Image) })
		e.Field("description", func(e *jx.Encoder) { e.Str(p.Description) })
		e.Field("organic", func(e *jx.Encoder) { e.Bool(p.Organic) })
		e.Field("local", func(e *jx.Encoder) { e.Bool(p.Local) })
		e.Field("inSeason", func(e *jx.Encoder) { e.Bool(p.InSeason) })
		e.Field("featured", func(e *jx.Encoder) { e.Bool(p.Featured) })
	})
}

func decodeSnapshot(data []byte) ([]Line, error) {
	d := jx.DecodeBytes(data)

	var lines []Line
	err := d.Arr(func(d *jx.Decoder) error {
		var l Line
		if err := d.Obj(func(d *jx.Decoder, key string) error {
			switch key {
			case "product":
				p, err := decodeProduct(d)
				if err != nil {
					return err
				}
				l.Product = p
				return nil
			case "quantity":
				q, err := d.Int()
				if err != nil {
					return err
				}
				l.Quantity = q
				return nil
			default:
				return d.Skip()
			}
		}); err != nil {
			return err
		}
		lines = append(lines, l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}

func decodeProduct(d *jx.Decoder) (catalog.Product, error) {
	var p catalog.Product
	err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "id":
			s, err := d.Str()
			p.ID = s
			return err
		case "name":
			s, err := d.Str()
			p.Name = s
			return err
		case "category":
			s, err := d.Str()
			p.Category = catalog.Category(s)
			return err
		case "price":
			s, err := d.Str()
			if err != nil {
				return err
			}
			price, err := decimal.NewFromString(s)
			p.Price = price
			return err
		case "unit":
			s, err := d.Str()
			p.Unit = s
			return err
		case "image":
			s, err := d.Str()
			p.Image = s
			return err
		case "description":
			s, err := d.Str()
			p.Description = s
			return err
		case "organic":
			b, err := d.Bool()
			p.Organic = b
			return err
		case "local":
			b, err := d.Bool()
			p.Local = b
			return err
		case "inSeason":
			b, err := d.Bool()
			p.InSeason = b
			return err
		case "featured":
			b, err := d.Bool()
			p.Featured = b
			return err
		default:
			return d.Skip()
		}
	})
	return p, err
}
