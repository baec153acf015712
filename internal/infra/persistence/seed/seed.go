// Package seed loads reference catalog, zones and users from YAML.
package seed

import (
	"florist/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Data is the catalog, zone and user set loaded at start-up.
type Data struct {
	Users    []entity.User
	Products []entity.Product
	Zones    []entity.DeliveryZone
}

type seedFile struct {
	Users []struct {
		ID    string `yaml:"id"`
		Name  string `yaml:"name"`
		Email string `yaml:"email"`
	} `yaml:"users"`

	Products []struct {
		ID       string            `yaml:"id"`
		Name     string            `yaml:"name"`
		Price    string            `yaml:"price"`
		Pricing  map[string]string `yaml:"pricing"`
		IsActive bool              `yaml:"isActive"`
	} `yaml:"products"`

	Zones []struct {
		ZoneID   string   `yaml:"zoneId"`
		Name     string   `yaml:"name"`
		Pincodes []string `yaml:"pincodes"`
		Pricing  struct {
			FixedTime string `yaml:"fixedTime"`
			Midnight  string `yaml:"midnight"`
			Express   string `yaml:"express"`
		} `yaml:"pricing"`
		IsActive bool `yaml:"isActive"`
	} `yaml:"zones"`
}

// Load reads a YAML seed file. Amounts are written in rupees, e.g. "499.50".
func Load(path string) (*Data, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read seed file %s", path)
	}

	var raw seedFile
	if err := k.UnmarshalWithConf("", &raw, koanf.UnmarshalConf{Tag: "yaml"}); err != nil {
		return nil, errors.Wrap(err, "unmarshal seed file")
	}

	data := &Data{}

	for _, u := range raw.Users {
		id, err := uuid.Parse(u.ID)
		if err != nil {
			return nil, errors.Wrapf(err, "user %q", u.ID)
		}
		data.Users = append(data.Users, entity.User{ID: id, Name: u.Name, Email: u.Email})
	}

	for _, p := range raw.Products {
		id, err := uuid.Parse(p.ID)
		if err != nil {
			return nil, errors.Wrapf(err, "product %q", p.ID)
		}
		product := entity.Product{ID: id, Name: p.Name, IsActive: p.IsActive}
		if product.Price, err = parseRupees(p.Price); err != nil {
			return nil, errors.Wrapf(err, "product %s price", p.ID)
		}
		if len(p.Pricing) > 0 {
			product.Pricing = make(map[entity.Size]entity.Money, len(p.Pricing))
			for size, amount := range p.Pricing {
				if !entity.Size(size).IsValid() {
					return nil, errors.Errorf("product %s has unknown size %q", p.ID, size)
				}
				price, err := parseRupees(amount)
				if err != nil {
					return nil, errors.Wrapf(err, "product %s size %s", p.ID, size)
				}
				product.Pricing[entity.Size(size)] = price
			}
		}
		data.Products = append(data.Products, product)
	}

	for _, z := range raw.Zones {
		zone := entity.DeliveryZone{ZoneID: z.ZoneID, Name: z.Name, Pincodes: z.Pincodes, IsActive: z.IsActive}
		var err error
		if zone.Pricing.FixedTime, err = parseRupees(z.Pricing.FixedTime); err != nil {
			return nil, errors.Wrapf(err, "zone %s fixed time", z.ZoneID)
		}
		if zone.Pricing.Midnight, err = parseRupees(z.Pricing.Midnight); err != nil {
			return nil, errors.Wrapf(err, "zone %s midnight", z.ZoneID)
		}
		if zone.Pricing.Express, err = parseRupees(z.Pricing.Express); err != nil {
			return nil, errors.Wrapf(err, "zone %s express", z.ZoneID)
		}
		data.Zones = append(data.Zones, zone)
	}

	return data, nil
}

func parseRupees(s string) (entity.Money, error) {
	if s == "" {
		return 0, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid amount %q", s)
	}

	return entity.MoneyFromDecimal(d), nil
}
