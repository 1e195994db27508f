package template

// defaultTemplate is the built-in design. It exercises both fill mechanisms
// so it doubles as a reference for template authors.
const defaultTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{HOTEL_NAME}}</title>
  <meta name="description" content="{{HOTEL_DESCRIPTION}}">
  <style>
    body { font-family: Georgia, serif; margin: 0; color: #2b2b2b; }
    header { background: #1f3a5f; color: #fff; padding: 2rem; text-align: center; }
    header img { max-height: 80px; }
    .stars { color: #e8b931; font-size: 1.4rem; }
    section { max-width: 960px; margin: 2rem auto; padding: 0 1rem; }
    .gallery { display: grid; grid-template-columns: repeat(auto-fill, minmax(280px, 1fr)); gap: 1rem; }
    .gallery img { width: 100%; height: 200px; object-fit: cover; border-radius: 4px; }
    footer { background: #1f3a5f; color: #fff; padding: 1.5rem; text-align: center; }
    footer a { color: #e8b931; margin: 0 .5rem; }
  </style>
</head>
<body>
  <header>
    <img id="hotel-logo" src="{{LOGO_URL}}" alt="{{HOTEL_NAME}}">
    <h1 id="hotel-name">{{HOTEL_NAME}}</h1>
    <div id="hotel-stars" class="stars">{{STAR_RATING}}</div>
  </header>

  <section>
    <h2>About</h2>
    <p id="hotel-description">{{HOTEL_DESCRIPTION}}</p>
    <p id="hotel-amenities">{{AMENITIES}}</p>
    <p>Check-in: <span id="check-in-time">{{CHECK_IN}}</span> &middot;
       Check-out: <span id="check-out-time">{{CHECK_OUT}}</span></p>
  </section>

  <section>
    <h2>Gallery</h2>
    <div class="gallery">
      <img id="gallery-image-1" src="{{GALLERY_IMAGE_1}}" alt="{{HOTEL_NAME}}">
      <img id="gallery-image-2" src="{{GALLERY_IMAGE_2}}" alt="{{HOTEL_NAME}}">
      <img id="gallery-image-3" src="{{GALLERY_IMAGE_3}}" alt="{{HOTEL_NAME}}">
      <img id="gallery-image-4" src="{{GALLERY_IMAGE_4}}" alt="{{HOTEL_NAME}}">
      <img id="gallery-image-5" src="{{GALLERY_IMAGE_5}}" alt="{{HOTEL_NAME}}">
    </div>
  </section>

  <section>
    <h2>Contact</h2>
    <p id="hotel-address">{{HOTEL_ADDRESS}}</p>
    <p><a id="hotel-phone" href="tel:{{HOTEL_PHONE}}">{{HOTEL_PHONE}}</a></p>
    <p><a id="hotel-email" href="mailto:{{HOTEL_EMAIL}}">{{HOTEL_EMAIL}}</a></p>
  </section>

  <footer>
    <a id="facebook-link" href="{{FACEBOOK_URL}}">Facebook</a>
    <a id="instagram-link" href="{{INSTAGRAM_URL}}">Instagram</a>
    <a id="twitter-link" href="{{TWITTER_URL}}">Twitter</a>
    <a id="linkedin-link" href="{{LINKEDIN_URL}}">LinkedIn</a>
    <a id="youtube-link" href="{{YOUTUBE_URL}}">YouTube</a>
    <p>&copy; {{HOTEL_NAME}}</p>
  </footer>
</body>
</html>
`
