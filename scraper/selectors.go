package scraper

// PriceSelectors is the priority-ordered list of selectors tried when
// looking for a product price. Earlier entries are the most site-specific
// and trustworthy; attribute wildcards come later as a wider net.
var PriceSelectors = []string{
	`[data-testid="price"]`,
	`.price`,
	`.current-price`,
	`.sale-price`,
	`.product-price`,
	`[class*="price"]`,
	`[id*="price"]`,
	`.price-current`,
	`.price-now`,
	`[data-price]`,
}

// SKUSelectors is the priority-ordered list of selectors tried when looking
// for a stock-keeping identifier.
var SKUSelectors = []string{
	`[data-testid="sku"]`,
	`.sku`,
	`.item-number`,
	`.product-sku`,
	`.model-number`,
	`[class*="sku"]`,
	`[id*="sku"]`,
	`[class*="item"]`,
	`.internet-number`,
}
