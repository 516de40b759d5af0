// internal/export/woocommerce.go
package export

// woocommerceDocument is a server-side template: guarded against direct
// access, it calls the host's gallery/price/cart functions and substitutes
// literal fallbacks when the host product object has no data.
const woocommerceDocument = `<?php
/**
 * WooCommerce Single Product Template
 * Custom product page template
 */

defined( 'ABSPATH' ) || exit;

get_header( 'shop' ); ?>

<style>
.woocommerce-custom-product {
  max-width: 1200px;
  margin: 0 auto;
  padding: 20px;
}

.woo-product-hero {
  background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
  color: white;
  padding: 50px 40px;
  text-align: center;
  border-radius: 12px;
  margin-bottom: 40px;
}

.woo-product-hero h1 {
  font-size: 2.8rem;
  font-weight: 700;
  margin-bottom: 16px;
}

.woo-product-hero .description {
  font-size: 1.2rem;
  opacity: 0.9;
}

.woo-product-content {
  display: grid;
  grid-template-columns: 1fr 1fr;
  gap: 40px;
  margin-bottom: 40px;
}

.woo-product-images {
  display: grid;
  gap: 16px;
}

.woo-product-images img {
  width: 100%;
  border-radius: 8px;
  box-shadow: 0 4px 12px rgba(0, 0, 0, 0.1);
}

.woo-product-summary h2 {
  font-size: 1.6rem;
  margin-bottom: 20px;
  color: #2d3748;
}

.woo-price {
  font-size: 2.2rem;
  font-weight: 700;
  color: #e53e3e;
  margin-bottom: 25px;
}

.woo-features {
  list-style: none;
  margin-bottom: 30px;
}

.woo-features li {
  padding: 8px 0;
  padding-left: 28px;
  position: relative;
  font-size: 1rem;
}

.woo-features li::before {
  content: "\2713";
  position: absolute;
  left: 0;
  color: #48bb78;
  font-weight: bold;
}

.woo-add-to-cart-button {
  background: #667eea !important;
  border-color: #667eea !important;
  padding: 16px 32px !important;
  font-size: 1.1rem !important;
  font-weight: 600 !important;
  border-radius: 8px !important;
  transition: all 0.3s !important;
  width: 100% !important;
}

.woo-add-to-cart-button:hover {
  background: #5a67d8 !important;
  border-color: #5a67d8 !important;
  transform: translateY(-2px) !important;
}

.woo-specifications {
  background: #f8f9fa;
  padding: 35px;
  border-radius: 12px;
  margin-top: 40px;
}

.woo-specifications h3 {
  font-size: 1.6rem;
  margin-bottom: 25px;
  color: #2d3748;
  text-align: center;
}

.woo-specs-table {
  display: grid;
  grid-template-columns: repeat(auto-fit, minmax(280px, 1fr));
  gap: 18px;
}

.woo-spec-item {
  display: flex;
  justify-content: space-between;
  padding: 12px 0;
  border-bottom: 1px solid #e2e8f0;
}

.woo-spec-label {
  font-weight: 600;
  color: #4a5568;
}

.woo-spec-value {
  color: #2d3748;
}

@media (max-width: 768px) {
  .woo-product-content {
    grid-template-columns: 1fr;
    gap: 30px;
  }

  .woo-product-hero h1 {
    font-size: 2rem;
  }

  .woo-specs-table {
    grid-template-columns: 1fr;
  }
}
</style>

<div class="woocommerce-custom-product">
  <div class="woo-product-hero">
    <h1><?php the_title(); ?></h1>
    <div class="description">
      <?php echo wp_kses_post( get_the_excerpt() ?: "[[.PHPDescription]]" ); ?>
    </div>
  </div>

  <div class="woo-product-content">
    <div class="woo-product-images">
      <?php
      global $product;
      $attachment_ids = $product->get_gallery_image_ids();

      if ( $attachment_ids ) {
        foreach ( $attachment_ids as $attachment_id ) {
          echo wp_get_attachment_image( $attachment_id, 'large' );
        }
      } else {
        // Fallback static images
[[- if .PHPImages]]
[[- range .PHPImages]]
        echo '<img src="[[.]]" alt="' . get_the_title() . '">';
[[- end]]
[[- else]]
        echo '<img src="` + placeholderImageWide + `" alt="Product Image">';
[[- end]]
      }
      ?>
    </div>

    <div class="woo-product-summary">
      <h2>Product Details</h2>

      <div class="woo-price">
        <?php echo $product->get_price_html() ?: "[[.PriceDisplay]]"; ?>
      </div>
[[- if .Features]]

      <ul class="woo-features">
[[- range .Features]]
        <li>[[.]]</li>
[[- end]]
      </ul>
[[- end]]

      <?php woocommerce_template_single_add_to_cart(); ?>
    </div>
  </div>
[[- if .Specifications]]

  <div class="woo-specifications">
    <h3>Specifications</h3>
    <div class="woo-specs-table">
[[- range .Specifications]]
      <div class="woo-spec-item">
        <span class="woo-spec-label">[[.Name]]:</span>
        <span class="woo-spec-value">[[.Value]]</span>
      </div>
[[- end]]
    </div>
  </div>
[[- end]]
</div>

<?php
get_footer( 'shop' );

/*
WooCommerce Integration Instructions:
1. Save this file as single-product-custom.php in your active theme
2. Upload images through WordPress Media Library
3. Set up product variations and pricing in WooCommerce admin
4. Configure shipping and tax settings
5. Test the add to cart and checkout process
6. Customize styling to match your theme
*/
`
