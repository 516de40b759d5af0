// internal/export/shopify.go
package export

// shopifyDocument is deliberately hybrid: it binds to live Liquid objects
// where the storefront can supply them and falls back to the literal product
// data captured in the builder, the way a theme section would actually be
// authored.
const shopifyDocument = `<!-- Shopify Product Template -->
<div class="product-page-custom">
  <style>
    .product-page-custom {
      max-width: 1200px;
      margin: 0 auto;
      padding: 20px;
    }

    .product-hero {
      background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
      color: white;
      padding: 60px 40px;
      text-align: center;
      border-radius: 12px;
      margin-bottom: 40px;
    }

    .product-hero h1 {
      font-size: 3rem;
      font-weight: 700;
      margin-bottom: 20px;
    }

    .product-hero p {
      font-size: 1.3rem;
      opacity: 0.9;
    }

    .product-main {
      display: grid;
      grid-template-columns: 1fr 1fr;
      gap: 50px;
      margin-bottom: 50px;
    }

    .product-gallery img {
      width: 100%;
      border-radius: 8px;
      margin-bottom: 16px;
      box-shadow: 0 4px 12px rgba(0, 0, 0, 0.1);
    }

    .product-info h2 {
      font-size: 1.8rem;
      margin-bottom: 20px;
      color: #2d3748;
    }

    .product-price {
      font-size: 2.5rem;
      font-weight: 700;
      color: #e53e3e;
      margin-bottom: 30px;
    }

    .shopify-features {
      list-style: none;
      margin-bottom: 30px;
    }

    .shopify-features li {
      padding: 10px 0;
      padding-left: 30px;
      position: relative;
      font-size: 1.1rem;
    }

    .shopify-features li::before {
      content: "\2713";
      position: absolute;
      left: 0;
      color: #48bb78;
      font-size: 1.2rem;
      font-weight: bold;
    }

    .shopify-add-to-cart {
      background: #667eea;
      color: white;
      border: none;
      padding: 18px 36px;
      font-size: 1.2rem;
      font-weight: 600;
      border-radius: 8px;
      cursor: pointer;
      width: 100%;
      transition: all 0.3s;
    }

    .shopify-add-to-cart:hover {
      background: #5a67d8;
      transform: translateY(-2px);
    }

    .product-specifications {
      background: #f8f9fa;
      padding: 40px;
      border-radius: 12px;
      margin-top: 40px;
    }

    .product-specifications h3 {
      font-size: 1.8rem;
      margin-bottom: 30px;
      color: #2d3748;
      text-align: center;
    }

    .specs-grid {
      display: grid;
      grid-template-columns: repeat(auto-fit, minmax(300px, 1fr));
      gap: 20px;
    }

    .spec-row {
      display: flex;
      justify-content: space-between;
      padding: 15px 0;
      border-bottom: 2px solid #e2e8f0;
    }

    .spec-name {
      font-weight: 600;
      color: #4a5568;
      font-size: 1.1rem;
    }

    .spec-value {
      color: #2d3748;
      font-size: 1.1rem;
    }

    @media (max-width: 768px) {
      .product-main {
        grid-template-columns: 1fr;
        gap: 30px;
      }

      .product-hero h1 {
        font-size: 2.2rem;
      }

      .specs-grid {
        grid-template-columns: 1fr;
      }
    }
  </style>

  <div class="product-hero">
    <h1>{{ product.title | default: "[[.Title]]" }}</h1>
    <p>{{ product.description | default: "[[.Description]]" }}</p>
  </div>

  <div class="product-main">
    <div class="product-gallery">
      {% if product.images.size > 0 %}
        {% for image in product.images %}
          <img src="{{ image | img_url: '600x600' }}" alt="{{ product.title }}">
        {% endfor %}
      {% else %}
[[- if .Images]]
[[- range .Images]]
        <img src="[[.]]" alt="[[$.Title]]">
[[- end]]
[[- else]]
        <img src="` + placeholderImageSquare + `" alt="Product Image">
[[- end]]
      {% endif %}
    </div>

    <div class="product-info">
      <h2>Product Details</h2>
      <div class="product-price">
        {{ product.price | money | default: "[[.PriceDisplay]]" }}
      </div>
[[- if .Features]]

      <ul class="shopify-features">
[[- range .Features]]
        <li>[[.]]</li>
[[- end]]
      </ul>
[[- end]]

      <form action="/cart/add" method="post" enctype="multipart/form-data">
        <select name="id" style="display: none;">
          {% for variant in product.variants %}
            <option value="{{ variant.id }}">{{ variant.title }}</option>
          {% endfor %}
        </select>
        <button type="submit" class="shopify-add-to-cart">Add to Cart</button>
      </form>
    </div>
  </div>
[[- if .Specifications]]

  <div class="product-specifications">
    <h3>Specifications</h3>
    <div class="specs-grid">
[[- range .Specifications]]
      <div class="spec-row">
        <span class="spec-name">[[.Name]]:</span>
        <span class="spec-value">[[.Value]]</span>
      </div>
[[- end]]
    </div>
  </div>
[[- end]]
</div>

<!-- Shopify Liquid Code Instructions -->
<!--
1. Save this as a new product template in your theme
2. Replace static content with Shopify Liquid variables
3. Upload images through Shopify admin
4. Configure product variants and pricing
5. Test the add to cart functionality
-->
`
